package experiments

import (
	"context"
	"os"
	"testing"

	"holdem/experiments/metrics"
	"holdem/game"
	"holdem/searcher"

	"github.com/stretchr/testify/require"
)

func settings(dir string) Settings {
	return Settings{
		Name:    "test",
		Hands:   6,
		Workers: 3,
		Seed:    42,
		Agent:   metrics.AgentConfig{ID: 1, Episodes: 50},
		Options: []searcher.Option{
			searcher.WithDuration(0),
			searcher.WithEpisodes(50),
		},
		OutputDir: dir,
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("playing every hand", func(t *testing.T) {
		report, err := Run(ctx, settings(""))

		require.NoError(t, err)
		require.Equal(t, int64(42), report.Seed)
		require.Equal(t, 6, report.Summary.Hands)
		require.Equal(t, 6, report.Summary.Folds+report.Summary.BotWins+report.Summary.OpponentWins)
		require.Len(t, report.Hands, 6)
		require.Len(t, report.Phases, report.Summary.Simulations/50)
		require.Empty(t, report.Dir, "Nothing should be written without an output directory")
	})

	t.Run("results do not depend on scheduling", func(t *testing.T) {
		serial := settings("")
		serial.Workers = 1
		a, err := Run(ctx, serial)
		require.NoError(t, err)
		b, err := Run(ctx, settings(""))
		require.NoError(t, err)

		for i := range a.Hands {
			require.Equal(t, a.Hands[i].Outcome, b.Hands[i].Outcome)
			require.Equal(t, a.Hands[i].BotHole, b.Hands[i].BotHole)
			require.Equal(t, a.Hands[i].Board, b.Hands[i].Board)
		}
	})

	t.Run("writing records", func(t *testing.T) {
		report, err := Run(ctx, settings(t.TempDir()))

		require.NoError(t, err)
		require.DirExists(t, report.Dir)
		require.FileExists(t, report.Dir+"/hand_records.csv")
		require.FileExists(t, report.Dir+"/phase_records.csv")
		require.FileExists(t, report.Dir+"/agent_configs.csv")
	})

	t.Run("cancelled context writes no records", func(t *testing.T) {
		dir := t.TempDir()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		report, err := Run(cancelled, settings(dir))

		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, report.Summary)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, entries, "No CSV should be written for an interrupted run")
	})

	t.Run("rejecting empty runs", func(t *testing.T) {
		s := settings("")
		s.Hands = 0
		_, err := Run(ctx, s)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})

	t.Run("rejecting invalid search options", func(t *testing.T) {
		s := settings("")
		s.Options = []searcher.Option{searcher.WithDuration(0)}
		_, err := Run(ctx, s)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}
