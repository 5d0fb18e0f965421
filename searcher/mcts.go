package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"holdem/game"
	"holdem/meta"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

// Result is what one estimation hands to its caller
type Result struct {
	Decision       Decision
	WinProbability float64
	Simulations    int
	Metrics        SearchMetrics
}

// MCTS estimates the bot's chance of winning by sampling opponent holes and
// board completions. The search is a single level: one root whose children
// are independent sampled worlds, each scored once by the hand evaluator.
type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	threshold   float64
	clock       quartz.Clock
	logger      zerolog.Logger
	metrics     MetricsCollector

	// Per-estimation state, reset by every Simulate call
	visits   int
	wins     float64
	children []*Node
}

// WithDuration sets the wall-clock budget. A non-positive budget is rejected by NewMCTS.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

// WithEpisodes caps the number of simulations, making a seeded search deterministic
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		m.episodes = episodes
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithThreshold(threshold float64) Option {
	return func(m *MCTS) {
		m.threshold = threshold
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(m *MCTS) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *MCTS) {
		m.logger = logger
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		duration:    meta.Duration,
		exploration: C,
		threshold:   meta.StayThreshold,
		clock:       quartz.NewReal(),
		logger:      log.Logger,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes < 0 {
		return nil, fmt.Errorf("episodes must not be negative, got %d: %w", m.episodes, game.ErrConfiguration)
	}
	if m.duration <= 0 && m.episodes == 0 {
		return nil, fmt.Errorf("must specify a positive duration or an episode cap, got duration %s: %w", m.duration, game.ErrConfiguration)
	}
	if m.threshold < 0 || m.threshold > 1 {
		return nil, fmt.Errorf("threshold must be within [0, 1], got %v: %w", m.threshold, game.ErrConfiguration)
	}
	return m, nil
}

// Simulate runs one estimation for a betting phase and blocks until the time
// budget elapses or the episode cap is reached. A done ctx aborts the
// estimation with its error. The deck is only read; every sample is drawn
// from a private copy.
func (m *MCTS) Simulate(ctx context.Context, hole, knownBoard []game.Card, deck *game.Deck) (Result, error) {
	if len(hole) != 2 {
		return Result{}, fmt.Errorf("hole has %d cards, want 2: %w", len(hole), game.ErrInvalidCardSet)
	}
	if len(knownBoard) > game.HandSize {
		return Result{}, fmt.Errorf("known board has %d cards, want at most %d: %w", len(knownBoard), game.HandSize, game.ErrInvalidCardSet)
	}
	for _, c := range append(append([]game.Card{}, hole...), knownBoard...) {
		if deck.Contains(c) {
			return Result{}, fmt.Errorf("card %s is both known and in the deck: %w", c, game.ErrInvalidCardSet)
		}
	}

	m.reset()
	m.metrics.Start(m.clock)

	var deadline time.Time
	if m.duration > 0 {
		deadline = m.clock.Now().Add(m.duration)
	}

	m.logger.Debug().
		Str("hole", game.FormatCards(hole)).
		Str("board", game.FormatCards(knownBoard)).
		Int("deck", deck.Len()).
		Dur("budget", m.duration).
		Int("episodes", m.episodes).
		Msg("starting estimation")

	for !m.exhausted(deadline) {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("estimation stopped after %d simulations: %w", m.visits, err)
		}
		if err := m.simulate(hole, knownBoard, deck); err != nil {
			return Result{}, err
		}
	}

	result := Result{
		WinProbability: m.WinProbability(),
		Simulations:    m.visits,
		Metrics:        m.metrics.Complete(),
	}
	result.Decision = DecideWithThreshold(result.WinProbability, m.threshold)

	m.logger.Debug().
		Int("simulations", result.Simulations).
		Float64("win_probability", result.WinProbability).
		Stringer("decision", result.Decision).
		Msg("completed estimation")

	return result, nil
}

func (m *MCTS) reset() {
	m.visits = 0
	m.wins = 0
	m.children = nil
}

// exhausted is checked once at the top of every iteration; an iteration in
// flight always completes.
func (m *MCTS) exhausted(deadline time.Time) bool {
	if m.episodes > 0 && m.visits >= m.episodes {
		return true
	}
	return !deadline.IsZero() && !m.clock.Now().Before(deadline)
}

func (m *MCTS) simulate(hole, knownBoard []game.Card, deck *game.Deck) error {
	if err := m.expand(knownBoard, deck); err != nil {
		return err
	}
	node := m.selects()
	win, err := evaluate(hole, node)
	if err != nil {
		return err
	}
	m.backup(node, win)
	return nil
}

func (m *MCTS) expand(knownBoard []game.Card, deck *game.Deck) error {
	oppHole, fullBoard, err := deal(knownBoard, deck)
	if err != nil {
		return fmt.Errorf("failed to expand: %w", err)
	}
	m.children = append(m.children, newNode(oppHole, fullBoard))
	return nil
}

// selects returns the child with the highest UCB1 score. Unvisited children
// score +Inf and ties keep the earliest child. Every child but the newest has
// already been visited, so the newest one wins without a full scan.
func (m *MCTS) selects() *Node {
	if newest := m.children[len(m.children)-1]; newest.visits == 0 {
		return newest
	}

	policy := newUCB1(m.exploration*m.exploration, float64(m.visits))
	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range m.children {
		if score := child.score(policy); best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// evaluate reports whether the bot's best hand beats or ties the opponent's
func evaluate(hole []game.Card, node *Node) (bool, error) {
	mine, _, err := game.EvalBoard(hole, node.FullBoard)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate bot hand: %w", err)
	}
	theirs, _, err := game.EvalBoard(node.OppHole, node.FullBoard)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate opponent hand: %w", err)
	}
	return mine.Compare(theirs) >= 0, nil
}

func (m *MCTS) backup(node *Node, win bool) {
	reward := Loss
	if win {
		reward = Win
	}
	node.backup(reward)
	m.wins += reward
	m.visits++
	m.metrics.AddEpisode(win)
}

// WinProbability is wins over visits of the latest estimation, or 0 before any visit
func (m *MCTS) WinProbability() float64 {
	if m.visits == 0 {
		return 0.0
	}
	return m.wins / float64(m.visits)
}

// Children returns the sampled worlds of the latest estimation in insertion order
func (m *MCTS) Children() []*Node {
	return m.children
}
