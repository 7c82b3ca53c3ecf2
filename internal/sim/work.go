package sim

import (
	"math"

	"nomadsim/internal/job"
)

// WorkOutcome is the transient record of the most recent job attempt.
// It is presentation data, never persisted.
type WorkOutcome struct {
	Success   bool   `json:"success"`
	JobTitle  string `json:"job_title"`
	Pay       int    `json:"pay"`
	RepChange int    `json:"rep_change"`
	Feedback  string `json:"feedback"`
}

const (
	equipEnergyDiscount = 0.85
	skillBonusPerLevel  = 0.08
	minFailProb         = 0.01
	failRepPenalty      = 1.5
)

// Work resolves one job attempt: risk roll, pay and reputation
// scaling, stress/energy cost, burnout triggering, then time
// advancement (which may roll days). The numeric resolution commits in
// full here; flavor feedback is fetched by the caller afterwards so an
// oracle stall can never corrupt the outcome.
func (e Engine) Work(p *PlayerState, j job.Job) (WorkOutcome, Result, error) {
	if p.IsBurnedOut {
		return WorkOutcome{}, Result{}, reject("Burned out. No clients until you recover.")
	}
	// The energy gate uses the actual cost, not the discounted one.
	if p.Energy < j.EnergyCost {
		return WorkOutcome{}, Result{}, reject("Too exhausted.")
	}
	if p.SkillLevel < j.MinSkill {
		return WorkOutcome{}, Result{}, reject("Not enough skill.")
	}

	energyCost := j.EnergyCost
	if p.EquipmentLevel >= 2 {
		energyCost *= equipEnergyDiscount
	}

	incomeMult := 1.0
	if p.EquipmentLevel >= 4 {
		incomeMult = 2.0
	}
	incomeMult *= 1 + float64(p.Reputation)/1000

	skillBonus := float64(p.SkillLevel-j.MinSkill) * skillBonusPerLevel
	failProb := math.Max(minFailProb, j.FailProb-skillBonus)
	success := e.Rand.Float64() > failProb

	pay := 0
	repChange := -int(math.Floor(float64(j.RepGain) * failRepPenalty))
	if success {
		pay = int(math.Floor(float64(j.Pay) * incomeMult))
		repChange = j.RepGain
	}

	var res Result

	p.Money += pay
	p.AddReputation(repChange)
	p.AddStress(j.StressGain)
	if p.Stress >= 100 {
		p.Stress = 0
		p.BurnoutCount++
		p.IsBurnedOut = true
		p.BurnoutRemaining = e.Balance.BurnoutLockoutDays
		res.logf("CRITICAL COLLAPSE #%d!", p.BurnoutCount)
		res.notify(NoticeBurnoutAlert, "Stress hit the limit. No work for %d days.", e.Balance.BurnoutLockoutDays)
	}
	p.Energy = clamp(p.Energy-energyCost, 0, 100)

	if success {
		res.logf("PAID: %d ฿", pay)
	} else {
		res.logf("FAILED: No pay.")
	}

	res.merge(e.AdvanceTime(p, j.TimeHours))

	return WorkOutcome{
		Success:   success,
		JobTitle:  j.Title,
		Pay:       pay,
		RepChange: repChange,
	}, res, nil
}
