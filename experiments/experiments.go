package experiments

import (
	"context"
	"fmt"
	"time"

	"holdem/engine"
	"holdem/experiments/metrics"
	"holdem/game"
	"holdem/player"
	"holdem/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Settings describes a batch of independent hands
type Settings struct {
	Name      string
	Hands     int
	Workers   int
	Seed      int64 // 0 picks a seed from the clock
	Agent     metrics.AgentConfig
	Options   []searcher.Option
	OutputDir string // Records are only written when set
}

type Report struct {
	Seed    int64
	Summary *metrics.Summary
	Hands   []metrics.HandRecord
	Phases  []metrics.PhaseRecord
	Dir     string
}

// Run plays every hand with its own deck, bot and estimator. Hands run
// concurrently on Settings.Workers goroutines; each estimation stays
// single-threaded. Hand i always uses seed+i, so results do not depend on
// scheduling.
func Run(ctx context.Context, settings Settings) (Report, error) {
	if settings.Hands <= 0 || settings.Workers <= 0 {
		return Report{}, fmt.Errorf("hands and workers must be positive, got %d and %d: %w", settings.Hands, settings.Workers, game.ErrConfiguration)
	}
	if settings.Name == "" {
		settings.Name = "simulation"
	}
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info().Msgf("starting %s of %d hands on %d workers (seed %d)...", settings.Name, settings.Hands, settings.Workers, seed)

	results := make([]engine.HandResult, settings.Hands)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Workers)
	for i := 0; i < settings.Hands; i++ {
		g.Go(func() error {
			result, err := runHand(ctx, fmt.Sprintf("bot-%d", i+1), uint64(seed)+uint64(i), settings.Options)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			results[i] = result
			log.Debug().Msgf("completed hand %d of %d: %s", i+1, settings.Hands, result.Outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Seed:    seed,
		Summary: metrics.NewSummary(),
	}
	for i, result := range results {
		report.Summary.Add(result.Hand, result.Phases)
		report.Hands = append(report.Hands, metrics.HandRecord{
			ID:         i + 1,
			Agent:      settings.Agent.ID,
			HandMetric: result.Hand,
		})
		for _, pm := range result.Phases {
			report.Phases = append(report.Phases, metrics.PhaseRecord{
				Hand:        i + 1,
				PhaseMetric: pm,
			})
		}
	}

	log.Info().Msgf("completed %s: %d folds, %d bot wins, %d opponent wins", settings.Name, report.Summary.Folds, report.Summary.BotWins, report.Summary.OpponentWins)

	if settings.OutputDir != "" {
		dir, err := store(settings, report)
		if err != nil {
			return Report{}, err
		}
		report.Dir = dir
	}
	return report, nil
}

// runHand plays a single hand between a fresh bot and a random opponent
func runHand(ctx context.Context, name string, seed uint64, options []searcher.Option) (engine.HandResult, error) {
	bot, err := player.NewBot(name, options...)
	if err != nil {
		return engine.HandResult{}, err
	}
	deck := game.NewDeck(game.NewRand(seed))
	e := engine.LocalEngine(bot, deck, game.NewStandardRules())
	return e.Run(ctx)
}

func store(settings Settings, report Report) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(settings.OutputDir, settings.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs([]metrics.AgentConfig{settings.Agent})
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteHandRecords(report.Hands)
	if err != nil {
		return "", fmt.Errorf("failed to write hand records: %w", err)
	}
	log.Info().Msg("stored hand records")

	err = writer.WritePhaseRecords(report.Phases)
	if err != nil {
		return "", fmt.Errorf("failed to write phase records: %w", err)
	}
	log.Info().Msg("stored phase records")

	return writer.Dir(), nil
}
