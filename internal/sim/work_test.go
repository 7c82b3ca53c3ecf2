package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nomadsim/internal/job"
)

func mediumJob() job.Job {
	return job.Job{
		ID:         "m-0",
		Title:      "React Dashboard (v1)",
		Tier:       job.TierMedium,
		Pay:        1000,
		EnergyCost: 40,
		StressGain: 18,
		RepGain:    8,
		MinSkill:   3,
		FailProb:   0.25,
		TimeHours:  6,
	}
}

func TestWork_RejectsWithoutEnergy(t *testing.T) {
	e := newTestEngine(nil)
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Energy = 30

	before := p
	_, _, err := e.Work(&p, mediumJob())

	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, before, p, "a rejected attempt must not mutate state")
}

func TestWork_RejectsWithoutSkill(t *testing.T) {
	e := newTestEngine(nil)
	p := NewPlayerState()

	before := p
	_, _, err := e.Work(&p, mediumJob())

	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.Equal(t, before, p)
}

func TestWork_RejectsDuringBurnout(t *testing.T) {
	e := newTestEngine(nil)
	p := NewPlayerState()
	p.SkillLevel = 3
	p.IsBurnedOut = true
	p.BurnoutRemaining = 2

	_, _, err := e.Work(&p, mediumJob())

	require.Error(t, err)
	assert.True(t, IsRejection(err))
}

func TestWork_SuccessPayAndReputation(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.9}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Money = 0

	outcome, res, err := e.Work(&p, mediumJob())

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 1000, outcome.Pay)
	assert.Equal(t, 1000, p.Money)
	assert.Equal(t, 8, p.Reputation)
	assert.InDelta(t, 60, p.Energy, 1e-9)
	assert.InDelta(t, 18, p.Stress, 1e-9)
	assert.InDelta(t, 14, p.CurrentTime, 1e-9)
	assert.Contains(t, res.Logs, "PAID: 1000 ฿")
}

func TestWork_PayScalesWithGearAndReputation(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.9}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Money = 0
	p.EquipmentLevel = 4
	p.Reputation = 100

	outcome, _, err := e.Work(&p, mediumJob())

	require.NoError(t, err)
	// 1000 * 2 (top gear) * 1.1 (rep) = 2200.
	assert.Equal(t, 2200, outcome.Pay)
}

func TestWork_GearDiscountsEnergyButNotTheGate(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.9}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.EquipmentLevel = 2

	// The gate still checks the undiscounted 40.
	p.Energy = 39
	_, _, err := e.Work(&p, mediumJob())
	require.Error(t, err)

	p.Energy = 100
	_, _, err = e.Work(&p, mediumJob())
	require.NoError(t, err)
	assert.InDelta(t, 100-40*0.85, p.Energy, 1e-9)
}

func TestWork_FailureCostsReputation(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.1}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Money = 0
	p.Reputation = 50

	outcome, res, err := e.Work(&p, mediumJob())

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, 0, outcome.Pay)
	assert.Equal(t, 0, p.Money)
	// -floor(8 * 1.5) = -12.
	assert.Equal(t, -12, outcome.RepChange)
	assert.Equal(t, 38, p.Reputation)
	assert.Contains(t, res.Logs, "FAILED: No pay.")
}

func TestWork_FailureReputationClampsAtZero(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.1}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Reputation = 5

	_, _, err := e.Work(&p, mediumJob())

	require.NoError(t, err)
	assert.Equal(t, 0, p.Reputation)
}

func TestWork_SkillBonusFlooredAtMinimumRisk(t *testing.T) {
	// Skill 10 on a minSkill-3 job wipes out the nominal 25% risk, but
	// a residual 1% always remains.
	p := NewPlayerState()
	p.SkillLevel = 10

	eFail := newTestEngine(&scriptRand{floats: []float64{0.005}})
	pFail := p
	outcome, _, err := eFail.Work(&pFail, mediumJob())
	require.NoError(t, err)
	assert.False(t, outcome.Success)

	eOK := newTestEngine(&scriptRand{floats: []float64{0.02}})
	pOK := p
	outcome, _, err = eOK.Work(&pOK, mediumJob())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestWork_StressLimitTriggersBurnout(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.9}})
	p := NewPlayerState()
	p.SkillLevel = 3
	p.Stress = 90

	_, res, err := e.Work(&p, mediumJob())

	require.NoError(t, err)
	assert.InDelta(t, 0, p.Stress, 1e-9, "stress resets on collapse")
	assert.Equal(t, 1, p.BurnoutCount)
	assert.True(t, p.IsBurnedOut)
	assert.Equal(t, 3, p.BurnoutRemaining)
	assert.Contains(t, res.Logs, "CRITICAL COLLAPSE #1!")
	require.NotEmpty(t, res.Notices)
	assert.Equal(t, NoticeBurnoutAlert, res.Notices[0].Kind)
}

func TestWork_LongJobRollsTheDay(t *testing.T) {
	e := newTestEngine(&scriptRand{floats: []float64{0.9}})
	p := NewPlayerState()
	p.SkillLevel = 6
	p.CurrentTime = 20

	j := mediumJob()
	j.TimeHours = 12

	_, res, err := e.Work(&p, j)

	require.NoError(t, err)
	assert.Equal(t, 2, p.Day)
	assert.InDelta(t, 8, p.CurrentTime, 1e-9)
	assert.Contains(t, res.Logs, "--- Day 2 begins ---")
}
