package sim

import (
	"math"

	"nomadsim/internal/job"
)

// Derived figures shown on the job board. They mirror the Work math
// exactly so the board never promises a payout the resolution would
// not produce.

func (e Engine) ScaledPay(p PlayerState, j job.Job) int {
	incomeMult := 1.0
	if p.EquipmentLevel >= 4 {
		incomeMult = 2.0
	}
	incomeMult *= 1 + float64(p.Reputation)/1000
	return int(math.Floor(float64(j.Pay) * incomeMult))
}

// RiskPercent is the effective failure chance after the skill bonus,
// floored at 1% for display. A skill deficit shows as elevated risk.
func (e Engine) RiskPercent(p PlayerState, j job.Job) int {
	bonus := float64(p.SkillLevel-j.MinSkill) * skillBonusPerLevel
	return int(math.Round(math.Max(1, (j.FailProb-bonus)*100)))
}

func (e Engine) EffectiveEnergyCost(p PlayerState, j job.Job) int {
	cost := j.EnergyCost
	if p.EquipmentLevel >= 2 {
		cost *= equipEnergyDiscount
	}
	return int(math.Round(cost))
}
