package session

import (
	"math"

	"nomadsim/internal/sim"
)

// OfferView is one job board row with the player-adjusted figures the
// client renders next to the raw contract.
type OfferView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Tier        string  `json:"tier"`
	Description string  `json:"description"`
	Pay         int     `json:"pay"`
	ScaledPay   int     `json:"scaled_pay"`
	RiskPercent int     `json:"risk_percent"`
	EnergyCost  int     `json:"energy_cost"`
	TimeHours   float64 `json:"time_hours"`
	MinSkill    int     `json:"min_skill"`
	CanAttempt  bool    `json:"can_attempt"`
	Pinned      bool    `json:"pinned"`
	PinDaysLeft int     `json:"pin_days_left,omitempty"`
}

// ResultView wraps the latest work outcome with its remaining display
// time so the client can dismiss it on schedule.
type ResultView struct {
	sim.WorkOutcome
	ExpiresInMs int64 `json:"expires_in_ms"`
}

// View is the full snapshot a client needs to render the game.
type View struct {
	Status sim.Status      `json:"status"`
	Player sim.PlayerState `json:"player"`

	Offers []OfferView `json:"offers"`
	Logs   []string    `json:"logs"`

	RentAmount      int  `json:"rent_amount"`
	RentDueInDays   int  `json:"rent_due_in_days"`
	RepBonusPercent int  `json:"rep_bonus_percent"`
	ScoreSaved      bool `json:"score_saved"`

	LastResult *ResultView `json:"last_result,omitempty"`
}

// View assembles the current snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state
	b := s.engine.Balance

	offers := make([]OfferView, 0, len(s.offers))
	for _, j := range s.offers {
		pinned := j.ID == p.PinnedJobID
		ov := OfferView{
			ID:          j.ID,
			Title:       j.Title,
			Tier:        string(j.Tier),
			Description: j.Description,
			Pay:         j.Pay,
			ScaledPay:   s.engine.ScaledPay(p, j),
			RiskPercent: s.engine.RiskPercent(p, j),
			EnergyCost:  s.engine.EffectiveEnergyCost(p, j),
			TimeHours:   j.TimeHours,
			MinSkill:    j.MinSkill,
			CanAttempt:  p.SkillLevel >= j.MinSkill && p.Energy >= j.EnergyCost && !p.IsBurnedOut,
			Pinned:      pinned,
		}
		if pinned {
			if left, ok := p.PinHistory[j.ID]; ok {
				ov.PinDaysLeft = left
			} else {
				ov.PinDaysLeft = b.PinDays
			}
		}
		offers = append(offers, ov)
	}

	rent := b.BaseRent
	if p.RentalLevel >= 2 {
		rent = b.LuxuryRent
	}

	v := View{
		Status:          s.status,
		Player:          p,
		Offers:          offers,
		Logs:            append([]string(nil), s.logs...),
		RentAmount:      rent,
		RentDueInDays:   b.RentInterval - (p.Day % b.RentInterval),
		RepBonusPercent: int(math.Round(float64(p.Reputation) / 10)),
		ScoreSaved:      s.saved,
	}

	if s.lastResult != nil {
		remaining := resultTTL - s.now().Sub(s.lastResultAt)
		if remaining > 0 {
			v.LastResult = &ResultView{
				WorkOutcome: *s.lastResult,
				ExpiresInMs: remaining.Milliseconds(),
			}
		} else {
			s.lastResult = nil
		}
	}

	return v
}
