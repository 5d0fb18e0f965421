package config

import (
	"fmt"
	"os"
	"time"

	"holdem/game"
	"holdem/meta"
	"holdem/searcher"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete bot configuration
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Search     *SearchSettings   `hcl:"search,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// SearchSettings tunes the per-phase Monte Carlo estimation
type SearchSettings struct {
	Duration    string   `hcl:"duration,optional"`
	Episodes    int      `hcl:"episodes,optional"`
	Exploration *float64 `hcl:"exploration,optional"` // nil means the default; 0 disables exploration
	Threshold   *float64 `hcl:"threshold,optional"`
}

// SimulationConfig controls batch runs of many hands
type SimulationConfig struct {
	Hands     int    `hcl:"hands,optional"`
	Workers   int    `hcl:"workers,optional"`
	Seed      int64  `hcl:"seed,optional"`
	OutputDir string `hcl:"output_dir,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: meta.LogLevel,
		Search: &SearchSettings{
			Duration:    meta.Duration.String(),
			Exploration: float64Ptr(meta.Exploration),
			Threshold:   float64Ptr(meta.StayThreshold),
		},
		Simulation: &SimulationConfig{
			Hands:     meta.Hands,
			Workers:   meta.Workers,
			OutputDir: meta.OutputDir,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for missing values
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Search == nil {
		config.Search = defaults.Search
	}
	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	}

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Search.Duration == "" {
		config.Search.Duration = defaults.Search.Duration
	}
	if config.Search.Exploration == nil {
		config.Search.Exploration = defaults.Search.Exploration
	}
	if config.Search.Threshold == nil {
		config.Search.Threshold = defaults.Search.Threshold
	}
	if config.Simulation.Hands == 0 {
		config.Simulation.Hands = defaults.Simulation.Hands
	}
	if config.Simulation.Workers == 0 {
		config.Simulation.Workers = defaults.Simulation.Workers
	}
	if config.Simulation.OutputDir == "" {
		config.Simulation.OutputDir = defaults.Simulation.OutputDir
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SearchDuration parses the configured budget
func (c *Config) SearchDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid search duration %q: %w", c.Search.Duration, game.ErrConfiguration)
	}
	return d, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	d, err := c.SearchDuration()
	if err != nil {
		return err
	}
	if d <= 0 && c.Search.Episodes <= 0 {
		return fmt.Errorf("search duration must be positive, got %s: %w", d, game.ErrConfiguration)
	}
	if c.Search.Episodes < 0 {
		return fmt.Errorf("search episodes must not be negative: %w", game.ErrConfiguration)
	}
	if c.Search.Exploration == nil || *c.Search.Exploration < 0 {
		return fmt.Errorf("exploration must not be negative: %w", game.ErrConfiguration)
	}
	if c.Search.Threshold == nil || *c.Search.Threshold < 0 || *c.Search.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0, 1]: %w", game.ErrConfiguration)
	}
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("simulation hands must be positive: %w", game.ErrConfiguration)
	}
	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("simulation workers must be positive: %w", game.ErrConfiguration)
	}
	return nil
}

// SearchOptions turns the search block into estimator options
func (c *Config) SearchOptions() ([]searcher.Option, error) {
	d, err := c.SearchDuration()
	if err != nil {
		return nil, err
	}
	return []searcher.Option{
		searcher.WithDuration(d),
		searcher.WithEpisodes(c.Search.Episodes),
		searcher.WithExploration(*c.Search.Exploration),
		searcher.WithThreshold(*c.Search.Threshold),
		searcher.WithMetrics(),
	}, nil
}

func float64Ptr(v float64) *float64 {
	return &v
}
