package sim

// Status is the derived terminal game status.
type Status string

const (
	StatusPlaying     Status = "PLAYING"
	StatusWin         Status = "WIN"
	StatusFailMoney   Status = "FAIL_MONEY"
	StatusFailBurnout Status = "FAIL_BURNOUT"
)

// Snapshot is one per-day trend point, appended at every day rollover.
type Snapshot struct {
	Day    int     `json:"day"`
	Money  int     `json:"money"`
	Stress float64 `json:"stress"`
}

// PlayerState is the single mutable aggregate of the simulation. One
// owner mutates it through engine transitions; there is no concurrent
// access by construction.
type PlayerState struct {
	Money      int     `json:"money"`
	Energy     float64 `json:"energy"`
	Stress     float64 `json:"stress"`
	Reputation int     `json:"reputation"`
	SkillLevel int     `json:"skill_level"`

	Day         int     `json:"day"`
	CurrentTime float64 `json:"current_time"`

	BurnoutCount     int  `json:"burnout_count"`
	IsBurnedOut      bool `json:"is_burned_out"`
	BurnoutRemaining int  `json:"burnout_remaining"`

	EquipmentLevel int `json:"equipment_level"`
	RentalLevel    int `json:"rental_level"`
	UnpaidRents    int `json:"unpaid_rents"`

	PinnedJobID string `json:"pinned_job_id,omitempty"`
	// PinHistory maps job id to remaining pin days. Entries survive
	// unpinning so a re-pin resumes partial decay.
	PinHistory map[string]int `json:"pin_history"`

	History []Snapshot `json:"history"`
}

// NewPlayerState returns the session bootstrap state.
func NewPlayerState() PlayerState {
	return PlayerState{
		Money:          1000,
		Energy:         100,
		Stress:         0,
		Reputation:     0,
		SkillLevel:     1,
		Day:            1,
		CurrentTime:    8,
		EquipmentLevel: 1,
		RentalLevel:    1,
		PinHistory:     map[string]int{},
		History:        []Snapshot{{Day: 1, Money: 1000, Stress: 0}},
	}
}

// AddEnergy applies a delta clamped to [0,100].
func (p *PlayerState) AddEnergy(delta float64) {
	p.Energy = clamp(p.Energy+delta, 0, 100)
}

// AddStress applies a delta clamped to [0,100].
func (p *PlayerState) AddStress(delta float64) {
	p.Stress = clamp(p.Stress+delta, 0, 100)
}

// AddReputation applies a delta, never dropping below zero.
func (p *PlayerState) AddReputation(delta int) {
	p.Reputation += delta
	if p.Reputation < 0 {
		p.Reputation = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
