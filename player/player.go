package player

import (
	"context"
	"fmt"

	"holdem/game"
	"holdem/searcher"
)

// Player decides whether to stay in a hand at each betting phase.
type Player interface {
	Name() string
	Decide(ctx context.Context, state *game.HandState) (searcher.Result, error)
}

// Bot runs a fresh Monte Carlo estimation for every phase it is asked about.
type Bot struct {
	name    string
	options []searcher.Option
}

// NewBot checks the search options up front so a bad budget fails before the hand starts.
func NewBot(name string, options ...searcher.Option) (*Bot, error) {
	if _, err := searcher.NewMCTS(options...); err != nil {
		return nil, err
	}
	return &Bot{name: name, options: options}, nil
}

func (b *Bot) Name() string {
	return b.name
}

// Decide estimates the bot's win probability against the current board. The
// hand's deck is only read; nothing carries over between phases.
func (b *Bot) Decide(ctx context.Context, state *game.HandState) (searcher.Result, error) {
	mcts, err := searcher.NewMCTS(b.options...)
	if err != nil {
		return searcher.Result{}, err
	}
	result, err := mcts.Simulate(ctx, state.Hole, state.Board, state.Deck)
	if err != nil {
		return searcher.Result{}, fmt.Errorf("%s failed to decide at %s: %w", b.name, state.Phase, err)
	}
	return result, nil
}
