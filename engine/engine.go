package engine

import (
	"context"

	"holdem/experiments/metrics"
	"holdem/game"
	"holdem/searcher"
)

type Engine interface {
	// Run plays one hand until the bot folds or the showdown is resolved
	Run(ctx context.Context) (HandResult, error)
}

type Outcome int

const (
	Folded       Outcome = iota // 0
	BotWins                     // 1
	OpponentWins                // 2
)

func (o Outcome) String() string {
	switch o {
	case Folded:
		return "fold"
	case BotWins:
		return "bot"
	case OpponentWins:
		return "opponent"
	default:
		return "unknown"
	}
}

// HandResult is everything that happened in one hand
type HandResult struct {
	Outcome  Outcome
	FoldedAt game.Phase
	BotHole  []game.Card
	OppHole  []game.Card // Empty when the bot folded
	Board    []game.Card
	BotRank  game.HandRank
	OppRank  game.HandRank
	BotBest  [game.HandSize]game.Card
	OppBest  [game.HandSize]game.Card
	Phases   []metrics.PhaseMetric
	Hand     metrics.HandMetric
}

// Narrator receives the hand as it is played
type Narrator interface {
	HoleDealt(hole []game.Card)
	PhaseDecided(phase game.Phase, board []game.Card, result searcher.Result)
	BoardRevealed(cards []game.Card)
	Showdown(result HandResult)
}

type nopNarrator struct{}

func NewNopNarrator() Narrator {
	return nopNarrator{}
}

func (nopNarrator) HoleDealt(hole []game.Card)                                               {}
func (nopNarrator) PhaseDecided(phase game.Phase, board []game.Card, result searcher.Result) {}
func (nopNarrator) BoardRevealed(cards []game.Card)                                          {}
func (nopNarrator) Showdown(result HandResult)                                               {}
