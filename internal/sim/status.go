package sim

// Evaluate derives the terminal game status from the current state.
// It is pure and idempotent; callers may run it after every mutation.
// Winning takes priority over simultaneous fail conditions.
func (e Engine) Evaluate(p PlayerState) Status {
	switch {
	case p.Money >= e.Balance.WinGoal:
		return StatusWin
	case p.UnpaidRents >= e.Balance.MaxRentStrikes:
		return StatusFailMoney
	case p.BurnoutCount >= e.Balance.MaxBurnouts:
		return StatusFailBurnout
	default:
		return StatusPlaying
	}
}
