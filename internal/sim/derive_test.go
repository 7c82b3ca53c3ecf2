package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskPercent(t *testing.T) {
	e := newTestEngine(nil)
	j := mediumJob() // FailProb 0.25, MinSkill 3

	t.Run("matching skill shows base risk", func(t *testing.T) {
		p := NewPlayerState()
		p.SkillLevel = 3
		assert.Equal(t, 25, e.RiskPercent(p, j))
	})

	t.Run("surplus skill lowers risk", func(t *testing.T) {
		p := NewPlayerState()
		p.SkillLevel = 5 // bonus 0.16
		assert.Equal(t, 9, e.RiskPercent(p, j))
	})

	t.Run("skill deficit raises risk above base", func(t *testing.T) {
		p := NewPlayerState()
		p.SkillLevel = 1 // bonus -0.16
		assert.Equal(t, 41, e.RiskPercent(p, j))
	})

	t.Run("never drops below one percent", func(t *testing.T) {
		p := NewPlayerState()
		p.SkillLevel = 10
		assert.Equal(t, 1, e.RiskPercent(p, j))
	})
}

func TestScaledPay(t *testing.T) {
	e := newTestEngine(nil)
	j := mediumJob() // Pay 1000

	p := NewPlayerState()
	assert.Equal(t, 1000, e.ScaledPay(p, j))

	p.EquipmentLevel = 4
	p.Reputation = 100
	assert.Equal(t, 2200, e.ScaledPay(p, j))
}

func TestEffectiveEnergyCost(t *testing.T) {
	e := newTestEngine(nil)
	j := mediumJob() // EnergyCost 40

	p := NewPlayerState()
	assert.Equal(t, 40, e.EffectiveEnergyCost(p, j))

	p.EquipmentLevel = 2
	assert.Equal(t, 34, e.EffectiveEnergyCost(p, j))
}
