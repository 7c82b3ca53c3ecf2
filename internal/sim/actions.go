package sim

import "nomadsim/internal/upgrade"

// RestHome trades 8h (6h in the luxury studio) for energy and stress
// recovery. Already being in perfect shape is a rejected no-op.
func (e Engine) RestHome(p *PlayerState) (Result, error) {
	if p.Energy >= 100 && p.Stress <= 0 {
		return Result{}, reject("You are perfectly fine.")
	}

	p.AddEnergy(e.Balance.HomeRestEnergy)
	p.AddStress(-e.Balance.HomeRestStress)

	var res Result
	res.logf("Rested at Home.")

	hours := e.Balance.HomeRestHours
	if p.RentalLevel >= 2 {
		hours = e.Balance.LuxuryRestHours
	}
	res.merge(e.AdvanceTime(p, hours))
	return res, nil
}

// RestCafe buys a short, paid stress break.
func (e Engine) RestCafe(p *PlayerState) (Result, error) {
	if p.Money < e.Balance.CafeFee {
		return Result{}, reject("Not enough money for the cafe.")
	}

	p.Money -= e.Balance.CafeFee
	p.AddEnergy(e.Balance.CafeEnergy)
	p.AddStress(-e.Balance.CafeStress)

	var res Result
	res.logf("Rested at Cafe.")
	res.merge(e.AdvanceTime(p, e.Balance.CafeHours))
	return res, nil
}

// Study raises the skill level for money, energy and a little stress.
// Course price scales with the current level.
func (e Engine) Study(p *PlayerState) (Result, error) {
	cost := e.Balance.StudyCostPerLevel * p.SkillLevel
	if p.Money < cost {
		return Result{}, reject("Not enough money for the course.")
	}
	if p.Energy < e.Balance.StudyEnergy {
		return Result{}, reject("Too tired to study.")
	}

	p.Money -= cost
	p.Energy -= e.Balance.StudyEnergy
	p.SkillLevel++
	p.AddStress(e.Balance.StudyStress)

	var res Result
	res.logf("Course complete! Skill Level: %d.", p.SkillLevel)
	res.merge(e.AdvanceTime(p, e.Balance.StudyHours))
	return res, nil
}

// TogglePin pins jobID, or unpins it if it is already pinned. A first
// pin seeds the remaining-days entry; a re-pin resumes partial decay.
func (e Engine) TogglePin(p *PlayerState, jobID string) {
	if p.PinnedJobID == jobID {
		p.PinnedJobID = ""
		return
	}
	if _, ok := p.PinHistory[jobID]; !ok {
		p.PinHistory[jobID] = e.Balance.PinDays
	}
	p.PinnedJobID = jobID
}

// BuyUpgrade purchases a catalog entry. Gear must be bought in level
// order; both kinds refuse re-purchase and insufficient funds.
func (e Engine) BuyUpgrade(p *PlayerState, u upgrade.Upgrade) (Result, error) {
	if p.Money < u.Price {
		return Result{}, reject("Not enough funds.")
	}

	switch u.Kind {
	case upgrade.KindGear:
		if p.EquipmentLevel >= u.Level {
			return Result{}, reject("Already owned.")
		}
		if u.Level > p.EquipmentLevel+1 {
			msg := "Buy the previous tier first!"
			if next, ok := upgrade.GearByLevel(p.EquipmentLevel + 1); ok {
				msg = "Buy " + next.Name + " first!"
			}
			return Result{}, reject(msg)
		}
		p.Money -= u.Price
		p.EquipmentLevel = u.Level
	case upgrade.KindLifestyle:
		if p.RentalLevel >= u.Level {
			return Result{}, reject("Already owned.")
		}
		p.Money -= u.Price
		p.RentalLevel = u.Level
	default:
		return Result{}, reject("Unknown upgrade.")
	}

	var res Result
	res.logf("Upgraded to %s!", u.Name)
	return res, nil
}
