// Package session owns one game run: the player aggregate, the daily
// job board, the activity feed and the terminal status. It is the
// single writer of the player state; every transition goes through it
// synchronously under one lock (the lock guards against concurrent
// HTTP callers, not against the core, which has exactly one owner).
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"nomadsim/internal/config"
	"nomadsim/internal/flavor"
	"nomadsim/internal/job"
	"nomadsim/internal/leaderboard"
	"nomadsim/internal/sim"
	"nomadsim/internal/upgrade"
)

const (
	maxLogLines = 100
	// resultTTL is how long the latest work outcome stays visible.
	resultTTL = 4500 * time.Millisecond
)

type Options struct {
	Balance config.Balance
	Rand    sim.Rand
	Oracle  flavor.Oracle
	Board   leaderboard.Repository
	Now     func() time.Time
}

type Session struct {
	mu     sync.Mutex
	engine sim.Engine
	rand   sim.Rand
	oracle flavor.Oracle
	board  leaderboard.Repository
	now    func() time.Time

	pool      []job.Job
	offers    []job.Job
	offersDay int

	state  sim.PlayerState
	status sim.Status
	logs   []string

	lastResult   *sim.WorkOutcome
	lastResultAt time.Time
	saved        bool
}

// New generates the contract pool, seeds the bootstrap state and picks
// the day-1 offers.
func New(opts Options) *Session {
	r := opts.Rand
	if r == nil {
		r = sim.NewRand()
	}
	oracle := opts.Oracle
	if oracle == nil {
		oracle = flavor.NewLibrary(r)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		engine: sim.NewEngine(opts.Balance, r),
		rand:   r,
		oracle: oracle,
		board:  opts.Board,
		now:    now,
	}
	s.pool = job.Generate(r)
	s.resetLocked()
	return s
}

// resetLocked returns the session to the bootstrap state. The pool is
// kept; only the run restarts.
func (s *Session) resetLocked() {
	s.state = sim.NewPlayerState()
	s.status = sim.StatusPlaying
	s.logs = nil
	s.lastResult = nil
	s.saved = false
	s.log(fmt.Sprintf("Welcome to Nomad Life. Reach %d ฿ to retire.", s.engine.Balance.WinGoal))
	s.offers = nil
	s.offersDay = 0
	s.refreshOffersLocked()
}

// Reset restarts the run.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.log("Game Restarted. Welcome back to the grind.")
}

// log prepends one day-stamped activity line, newest first, capped.
func (s *Session) log(msg string) {
	s.logs = append([]string{fmt.Sprintf("[%d] %s", s.state.Day, msg)}, s.logs...)
	if len(s.logs) > maxLogLines {
		s.logs = s.logs[:maxLogLines]
	}
}

func (s *Session) applyResult(res sim.Result) {
	for _, line := range res.Logs {
		s.log(line)
	}
}

// afterMutation re-derives the terminal status and reselects the job
// board if the day rolled.
func (s *Session) afterMutation() {
	s.status = s.engine.Evaluate(s.state)
	if s.state.Day != s.offersDay {
		s.refreshOffersLocked()
	}
}

func (s *Session) refreshOffersLocked() {
	b := s.engine.Balance
	s.offers = job.SelectDaily(s.rand, s.pool, s.offers, s.state.PinnedJobID,
		s.state.Day, b.DailyOffers, b.EasyNetDays)
	s.offersDay = s.state.Day
}

// guard rejects any action once the run has ended.
func (s *Session) guard() error {
	if s.status != sim.StatusPlaying {
		return sim.Rejection{Reason: "The run is over. Restart to play again."}
	}
	return nil
}

// Work resolves one contract attempt. The numeric outcome is committed
// under the lock; the flavor oracle is consulted only afterwards, so a
// slow or failing text fetch can never block or corrupt resolution.
func (s *Session) Work(ctx context.Context, jobID string) (sim.WorkOutcome, sim.Result, error) {
	s.mu.Lock()
	if err := s.guard(); err != nil {
		s.mu.Unlock()
		return sim.WorkOutcome{}, sim.Result{}, err
	}
	j, ok := job.FindByID(s.offers, jobID)
	if !ok {
		s.mu.Unlock()
		return sim.WorkOutcome{}, sim.Result{}, sim.Rejection{Reason: "That contract is not on today's board."}
	}

	outcome, res, err := s.engine.Work(&s.state, j)
	if err != nil {
		s.logRejection(err)
		s.mu.Unlock()
		return sim.WorkOutcome{}, sim.Result{}, err
	}
	s.applyResult(res)
	s.afterMutation()
	s.mu.Unlock()

	outcome.Feedback = s.fetchFeedback(ctx, j.Title, outcome.Success)

	s.mu.Lock()
	captured := outcome
	s.lastResult = &captured
	s.lastResultAt = s.now()
	s.mu.Unlock()

	return outcome, res, nil
}

func (s *Session) fetchFeedback(ctx context.Context, title string, success bool) string {
	text, err := s.oracle.Feedback(ctx, title, success)
	if err == nil && text != "" {
		return text
	}
	if success {
		return "Payment received. The client left no comment."
	}
	return "The client walked away without a word."
}

// RestHome, RestCafe and Study run the simple routine transitions.

func (s *Session) RestHome() (sim.Result, error) {
	return s.simple(func() (sim.Result, error) { return s.engine.RestHome(&s.state) })
}

func (s *Session) RestCafe() (sim.Result, error) {
	return s.simple(func() (sim.Result, error) { return s.engine.RestCafe(&s.state) })
}

func (s *Session) Study() (sim.Result, error) {
	return s.simple(func() (sim.Result, error) { return s.engine.Study(&s.state) })
}

func (s *Session) simple(fn func() (sim.Result, error)) (sim.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return sim.Result{}, err
	}
	res, err := fn()
	if err != nil {
		s.logRejection(err)
		return sim.Result{}, err
	}
	s.applyResult(res)
	s.afterMutation()
	return res, nil
}

// TogglePin pins or unpins a contract from the pool.
func (s *Session) TogglePin(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if _, ok := job.FindByID(s.pool, jobID); !ok {
		return sim.Rejection{Reason: "No such contract."}
	}
	s.engine.TogglePin(&s.state, jobID)
	s.sortPinnedFirstLocked()
	return nil
}

func (s *Session) sortPinnedFirstLocked() {
	if s.state.PinnedJobID == "" {
		return
	}
	for i, j := range s.offers {
		if j.ID == s.state.PinnedJobID && i > 0 {
			reordered := append([]job.Job{j}, append(append([]job.Job{}, s.offers[:i]...), s.offers[i+1:]...)...)
			s.offers = reordered
			return
		}
	}
}

// BuyUpgrade purchases a gear or lifestyle upgrade by catalog id.
func (s *Session) BuyUpgrade(upgradeID string) (sim.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return sim.Result{}, err
	}
	u, ok := upgrade.ByID(upgradeID)
	if !ok {
		return sim.Result{}, sim.Rejection{Reason: "No such upgrade."}
	}
	res, err := s.engine.BuyUpgrade(&s.state, u)
	if err != nil {
		s.logRejection(err)
		return sim.Result{}, err
	}
	s.applyResult(res)
	s.afterMutation()
	return res, nil
}

func (s *Session) logRejection(err error) {
	if sim.IsRejection(err) {
		s.log(err.Error())
	}
}

// Horoscope fetches the daily line from the oracle, degrading quietly.
func (s *Session) Horoscope(ctx context.Context) string {
	s.mu.Lock()
	day := s.state.Day
	s.mu.Unlock()

	text, err := s.oracle.Horoscope(ctx, day)
	if err != nil || text == "" {
		return "The stars are quiet today."
	}
	return text
}

// SaveScore appends a finished run to the leaderboard, once.
func (s *Session) SaveScore(ctx context.Context, name string) error {
	s.mu.Lock()
	if s.status == sim.StatusPlaying {
		s.mu.Unlock()
		return sim.Rejection{Reason: "The run is not over yet."}
	}
	if s.saved {
		s.mu.Unlock()
		return sim.Rejection{Reason: "Score already saved."}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.mu.Unlock()
		return sim.Rejection{Reason: "A name is required."}
	}
	entry := leaderboard.Entry{
		Name:     name,
		Day:      s.state.Day,
		Category: categoryFor(s.status),
	}
	board := s.board
	s.mu.Unlock()

	if board == nil {
		return sim.Rejection{Reason: "No leaderboard available."}
	}
	if err := board.Append(ctx, entry); err != nil {
		return err
	}

	s.mu.Lock()
	s.saved = true
	s.mu.Unlock()
	return nil
}

func categoryFor(status sim.Status) leaderboard.Category {
	switch status {
	case sim.StatusWin:
		return leaderboard.CategoryGood
	case sim.StatusFailMoney:
		return leaderboard.CategoryBad
	default:
		return leaderboard.CategorySad
	}
}

// TopScores returns the capped ranking per ending category.
func (s *Session) TopScores(ctx context.Context) (map[leaderboard.Category][]leaderboard.Entry, error) {
	if s.board == nil {
		return map[leaderboard.Category][]leaderboard.Entry{}, nil
	}
	out := make(map[leaderboard.Category][]leaderboard.Entry, len(leaderboard.Categories))
	for _, cat := range leaderboard.Categories {
		entries, err := s.board.Top(ctx, cat, leaderboard.TopN)
		if err != nil {
			return nil, err
		}
		out[cat] = entries
	}
	return out, nil
}
