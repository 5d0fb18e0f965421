package searcher

import (
	"time"

	"github.com/coder/quartz"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Episodes  int
	Wins      int
}

type MetricsCollector interface {
	Start(clock quartz.Clock)
	AddEpisode(win bool)
	Complete() SearchMetrics
}

// Estimation is single-threaded, so the collector needs no atomics
type metricsCollector struct {
	clock     quartz.Clock
	startTime time.Time
	episodes  int
	wins      int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(clock quartz.Clock) {
	m.clock = clock
	m.startTime = clock.Now()
	m.episodes = 0
	m.wins = 0
}

func (m *metricsCollector) AddEpisode(win bool) {
	m.episodes++
	if win {
		m.wins++
	}
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  m.clock.Since(m.startTime),
		Episodes:  m.episodes,
		Wins:      m.wins,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(clock quartz.Clock) {}
func (m *noMetricsCollector) AddEpisode(win bool)      {}
func (m *noMetricsCollector) Complete() SearchMetrics  { return SearchMetrics{} }
