package metrics

import (
	"time"
)

// AgentConfig describes the search settings a bot played with
type AgentConfig struct {
	ID          int
	Duration    time.Duration
	Episodes    int
	Exploration float64
	Threshold   float64
}

// PhaseMetric is one betting phase of one hand
type PhaseMetric struct {
	Phase          string
	Board          string
	Decision       string
	WinProbability float64
	Simulations    int
	Duration       time.Duration
}

// HandMetric summarises one played hand
type HandMetric struct {
	Outcome   string // "fold", "bot" or "opponent"
	FoldedAt  string // Phase name when Outcome is "fold"
	BotHole   string
	OppHole   string
	Board     string
	BotHand   string
	OppHand   string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Summary counts hand outcomes over a run
type Summary struct {
	Hands        int
	Folds        int
	BotWins      int
	OpponentWins int
	FoldsByPhase map[string]int
	Simulations  int
}

func NewSummary() *Summary {
	return &Summary{FoldsByPhase: make(map[string]int)}
}

// Add records one hand and its phases
func (s *Summary) Add(hand HandMetric, phases []PhaseMetric) {
	s.Hands++
	switch hand.Outcome {
	case "fold":
		s.Folds++
		s.FoldsByPhase[hand.FoldedAt]++
	case "bot":
		s.BotWins++
	case "opponent":
		s.OpponentWins++
	}
	for _, p := range phases {
		s.Simulations += p.Simulations
	}
}

// ShowdownWinRate is the bot's share of hands that reached a showdown
func (s *Summary) ShowdownWinRate() float64 {
	showdowns := s.BotWins + s.OpponentWins
	if showdowns == 0 {
		return 0
	}
	return float64(s.BotWins) / float64(showdowns)
}
