package event

// Polarity classifies an event as good or bad news for the player.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

// EffectKind enumerates what an event changes. Events carry data only;
// the single resolver interpreting these kinds lives in the simulation
// engine, which keeps the tables serializable and the effect logic in
// one place.
type EffectKind string

const (
	// EffectMoney adds Amount to the balance (negative for costs).
	EffectMoney EffectKind = "money"
	// EffectEnergy adds Amount energy, clamped to [0,100].
	EffectEnergy EffectKind = "energy"
	// EffectStress adds Amount stress, clamped to [0,100].
	EffectStress EffectKind = "stress"
	// EffectReputation adds Amount reputation, clamped at 0.
	EffectReputation EffectKind = "reputation"
	// EffectSkill adds Amount skill levels.
	EffectSkill EffectKind = "skill"
	// EffectEnergyEquipGated adds ReducedAmount energy instead of
	// Amount when the equipment level is at least MinEquipLevel.
	EffectEnergyEquipGated EffectKind = "energy_equip_gated"
)

// Effect is the tagged variant an event applies to player state.
type Effect struct {
	Kind          EffectKind `json:"kind"`
	Amount        int        `json:"amount"`
	ReducedAmount int        `json:"reduced_amount,omitempty"`
	MinEquipLevel int        `json:"min_equip_level,omitempty"`
}

// Event is a random daily happening drawn during day rollover.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Polarity    Polarity `json:"polarity"`
	Effect      Effect   `json:"effect"`
	// Log is the activity-feed line shown when the effect applies.
	// ReducedLog replaces it when the equip-gated reduced branch fires.
	Log        string `json:"log"`
	ReducedLog string `json:"reduced_log,omitempty"`
}
