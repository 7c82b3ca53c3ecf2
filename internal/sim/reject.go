package sim

import "errors"

// Rejection declines an action without mutating state. The reason is
// the human-readable activity-feed line. Rejections are the only
// "errors" the simulation core produces; nothing in it is fatal.
type Rejection struct {
	Reason string
}

func (r Rejection) Error() string { return r.Reason }

func reject(reason string) error { return Rejection{Reason: reason} }

// IsRejection reports whether err is an action rejection rather than a
// genuine failure.
func IsRejection(err error) bool {
	var rej Rejection
	return errors.As(err, &rej)
}

// AsRejection unwraps err into target when it is a rejection.
func AsRejection(err error, target *Rejection) bool {
	return errors.As(err, target)
}
