package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Run("counting outcomes", func(t *testing.T) {
		s := NewSummary()
		s.Add(HandMetric{Outcome: "fold", FoldedAt: "Flop"}, []PhaseMetric{{Simulations: 10}, {Simulations: 20}})
		s.Add(HandMetric{Outcome: "bot"}, []PhaseMetric{{Simulations: 5}})
		s.Add(HandMetric{Outcome: "bot"}, nil)
		s.Add(HandMetric{Outcome: "opponent"}, nil)

		require.Equal(t, 4, s.Hands)
		require.Equal(t, 1, s.Folds)
		require.Equal(t, 2, s.BotWins)
		require.Equal(t, 1, s.OpponentWins)
		require.Equal(t, map[string]int{"Flop": 1}, s.FoldsByPhase)
		require.Equal(t, 35, s.Simulations)
		require.InDelta(t, 2.0/3, s.ShowdownWinRate(), 1e-9)
	})

	t.Run("no showdowns", func(t *testing.T) {
		require.Zero(t, NewSummary().ShowdownWinRate())
	})
}

func TestWriter(t *testing.T) {
	t.Run("writing records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Duration: time.Second, Threshold: 0.5}}))
		require.NoError(t, w.WriteHandRecords([]HandRecord{{ID: 1, Agent: 1, HandMetric: HandMetric{Outcome: "bot"}}}))
		require.NoError(t, w.WritePhaseRecords([]PhaseRecord{{Hand: 1, PhaseMetric: PhaseMetric{Phase: "Pre-Flop", Decision: "STAY"}}}))

		f, err := os.Open(filepath.Join(w.Dir(), "phase_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)

		require.Len(t, rows, 2)
		require.Equal(t, "phase", rows[0][1])
		require.Equal(t, "Pre-Flop", rows[1][1])
		require.Equal(t, "STAY", rows[1][3])

		for _, name := range []string{"agent_configs.csv", "hand_records.csv"} {
			require.FileExists(t, filepath.Join(w.Dir(), name))
		}
	})
}
