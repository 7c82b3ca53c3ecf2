package sim

import (
	"fmt"

	"nomadsim/internal/config"
	"nomadsim/internal/event"
)

// Engine applies simulation transitions to a PlayerState. It holds no
// mutable state of its own; all mutation happens on the aggregate
// passed in, and every transition reports its side effects as logs and
// notices for the caller to present.
type Engine struct {
	Balance  config.Balance
	Rand     Rand
	Positive []event.Event
	Negative []event.Event
}

// NewEngine wires an engine with the standard event tables.
func NewEngine(balance config.Balance, r Rand) Engine {
	return Engine{
		Balance:  balance,
		Rand:     r,
		Positive: event.PositiveEvents,
		Negative: event.NegativeEvents,
	}
}

// NoticeKind names an out-of-band alert the presentation layer may
// want to surface more loudly than a feed line.
type NoticeKind string

const (
	NoticeRentWarning  NoticeKind = "rent_warning"
	NoticeBurnoutAlert NoticeKind = "burnout_alert"
	NoticePinExpired   NoticeKind = "pin_expired"
)

type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Result collects the observable side effects of one transition:
// activity-feed lines and notification events, in occurrence order.
type Result struct {
	Logs    []string `json:"logs"`
	Notices []Notice `json:"notices"`
}

func (r *Result) logf(format string, args ...any) {
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}

func (r *Result) notify(kind NoticeKind, format string, args ...any) {
	r.Notices = append(r.Notices, Notice{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) merge(other Result) {
	r.Logs = append(r.Logs, other.Logs...)
	r.Notices = append(r.Notices, other.Notices...)
}

// AdvanceTime adds hours to the clock and applies one day rollover per
// full 24-hour wrap. A single call may roll several days; the rollover
// sequence runs in full for each. This is the sole writer of Day,
// History, UnpaidRents, pin decay and burnout recovery.
func (e Engine) AdvanceTime(p *PlayerState, hours float64) Result {
	var res Result

	total := p.CurrentTime + hours
	for total >= 24 {
		total -= 24
		e.rollover(p, &res)
	}
	p.CurrentTime = total

	return res
}

func (e Engine) rollover(p *PlayerState, res *Result) {
	p.Day++

	rent := e.Balance.BaseRent
	if p.RentalLevel >= 2 {
		rent = e.Balance.LuxuryRent
	}

	daysUntilRent := e.Balance.RentInterval - (p.Day % e.Balance.RentInterval)
	if daysUntilRent == e.Balance.RentWarningDays {
		res.notify(NoticeRentWarning, "Rent of %d ฿ is due in %d days.", rent, daysUntilRent)
	}

	if p.Day%e.Balance.RentInterval == 0 {
		if p.Money >= rent {
			p.Money -= rent
			res.logf("RENT PAID: -%d ฿.", rent)
		} else {
			// Rent is never force-deducted into a negative balance.
			p.UnpaidRents++
			res.logf("WARNING: Could not pay rent! Unpaid: %d/%d strikes.", p.UnpaidRents, e.Balance.MaxRentStrikes)
		}
	}

	if p.PinnedJobID != "" {
		remaining, ok := p.PinHistory[p.PinnedJobID]
		if !ok {
			remaining = e.Balance.PinDays
		}
		remaining--
		p.PinHistory[p.PinnedJobID] = remaining
		if remaining <= 0 {
			res.logf("Pinned job expired!")
			res.notify(NoticePinExpired, "Your pinned contract is no longer reserved.")
			p.PinnedJobID = ""
		}
	}

	if p.IsBurnedOut {
		p.BurnoutRemaining--
		if p.BurnoutRemaining <= 0 {
			p.IsBurnedOut = false
			res.logf("Recovered from Burnout!")
		}
	}

	regen := e.Balance.EnergyRegen
	if p.IsBurnedOut {
		regen = e.Balance.BurnoutEnergyRegen
	}
	p.AddEnergy(regen)

	if !p.IsBurnedOut && e.Rand.Float64() < e.Balance.EventChance {
		pool := e.Negative
		if e.Rand.Float64() > 0.5 {
			pool = e.Positive
		}
		if len(pool) > 0 {
			ev := pool[e.Rand.Intn(len(pool))]
			msg := applyEvent(p, ev)
			res.logf("EVENT: %s - %s", ev.Title, msg)
		}
	}

	p.History = append(p.History, Snapshot{Day: p.Day, Money: p.Money, Stress: p.Stress})
	res.logf("--- Day %d begins ---", p.Day)
}
