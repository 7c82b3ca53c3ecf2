package sim

import "nomadsim/internal/event"

// applyEvent is the single resolver for event effect variants. It
// returns the activity-feed line describing what happened.
func applyEvent(p *PlayerState, ev event.Event) string {
	eff := ev.Effect
	switch eff.Kind {
	case event.EffectMoney:
		// Costs can drive the balance negative; only rent billing
		// refuses to force a deficit.
		p.Money += eff.Amount
	case event.EffectEnergy:
		p.AddEnergy(float64(eff.Amount))
	case event.EffectStress:
		p.AddStress(float64(eff.Amount))
	case event.EffectReputation:
		p.AddReputation(eff.Amount)
	case event.EffectSkill:
		p.SkillLevel += eff.Amount
	case event.EffectEnergyEquipGated:
		delta := eff.Amount
		msg := ev.Log
		if p.EquipmentLevel >= eff.MinEquipLevel {
			delta = eff.ReducedAmount
			msg = ev.ReducedLog
		}
		p.AddEnergy(float64(delta))
		return msg
	}
	return ev.Log
}
