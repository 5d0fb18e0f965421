package engine

import (
	"context"
	"fmt"
	"time"

	"holdem/experiments/metrics"
	"holdem/game"
	"holdem/player"
	"holdem/searcher"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

// Local plays one heads-up hand against a random opponent on a single deck.
type Local struct {
	Rules    game.Rules
	Bot      player.Player
	Deck     *game.Deck
	Narrator Narrator
	Clock    quartz.Clock
}

func LocalEngine(bot player.Player, deck *game.Deck, rules game.Rules) *Local {
	if rules == nil {
		rules = game.NewStandardRules()
	}
	return &Local{
		Rules:    rules,
		Bot:      bot,
		Deck:     deck,
		Narrator: NewNopNarrator(),
		Clock:    quartz.NewReal(),
	}
}

// Run deals the bot's hole cards, asks the bot to decide at every phase and
// stops at the first fold. A hand that survives the river goes to showdown
// against hole cards dealt from what is left of the deck.
func (e *Local) Run(ctx context.Context) (HandResult, error) {
	start := e.Clock.Now()

	state, err := game.NewHandState(e.Rules, e.Deck)
	if err != nil {
		return HandResult{}, err
	}
	e.Narrator.HoleDealt(state.Hole)

	result := HandResult{BotHole: state.Hole}

	for {
		// The bot sees a copy so it cannot deal from the real deck
		decision, err := e.Bot.Decide(ctx, state.Copy())
		if err != nil {
			return HandResult{}, fmt.Errorf("%s phase: %w", state.Phase, err)
		}
		result.Phases = append(result.Phases, metrics.PhaseMetric{
			Phase:          state.Phase.String(),
			Board:          game.FormatCards(state.Board),
			Decision:       decision.Decision.String(),
			WinProbability: decision.WinProbability,
			Simulations:    decision.Simulations,
			Duration:       decision.Metrics.Duration,
		})
		e.Narrator.PhaseDecided(state.Phase, state.Board, decision)

		log.Info().
			Str("player", e.Bot.Name()).
			Stringer("phase", state.Phase).
			Stringer("decision", decision.Decision).
			Float64("win_probability", decision.WinProbability).
			Int("simulations", decision.Simulations).
			Msg("phase decided")

		if decision.Decision == searcher.Fold {
			result.Outcome = Folded
			result.FoldedAt = state.Phase
			result.Board = state.Board
			e.finish(&result, start)
			return result, nil
		}

		revealed, err := state.RevealBoard()
		if err != nil {
			return HandResult{}, err
		}
		if len(revealed) > 0 {
			e.Narrator.BoardRevealed(revealed)
		}
		if !state.Advance() {
			break
		}
	}

	if err := e.showdown(state, &result); err != nil {
		return HandResult{}, err
	}
	e.finish(&result, start)
	e.Narrator.Showdown(result)
	return result, nil
}

func (e *Local) showdown(state *game.HandState, result *HandResult) error {
	oppHole, err := state.Deck.Draw(e.Rules.HoleCards())
	if err != nil {
		return fmt.Errorf("failed to deal opponent hole: %w", err)
	}
	result.OppHole = oppHole
	result.Board = state.Board

	result.BotRank, result.BotBest, err = game.EvalBoard(state.Hole, state.Board)
	if err != nil {
		return fmt.Errorf("failed to evaluate bot hand: %w", err)
	}
	result.OppRank, result.OppBest, err = game.EvalBoard(oppHole, state.Board)
	if err != nil {
		return fmt.Errorf("failed to evaluate opponent hand: %w", err)
	}

	// Ties go to the bot
	if result.BotRank.Compare(result.OppRank) >= 0 {
		result.Outcome = BotWins
	} else {
		result.Outcome = OpponentWins
	}
	return nil
}

func (e *Local) finish(result *HandResult, start time.Time) {
	end := e.Clock.Now()
	result.Hand = metrics.HandMetric{
		Outcome:   result.Outcome.String(),
		BotHole:   game.FormatCards(result.BotHole),
		OppHole:   game.FormatCards(result.OppHole),
		Board:     game.FormatCards(result.Board),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if result.Outcome == Folded {
		result.Hand.FoldedAt = result.FoldedAt.String()
		return
	}
	result.Hand.BotHand = result.BotRank.Category.String()
	result.Hand.OppHand = result.OppRank.Category.String()
}
