package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"holdem/config"
	"holdem/engine"
	"holdem/experiments"
	"holdem/experiments/metrics"
	"holdem/game"
	"holdem/player"
)

// SearchFlags override the search block of the configuration file
type SearchFlags struct {
	Duration time.Duration `short:"d" help:"Time budget per betting phase (e.g. 10s, 500ms)"`
	Episodes int           `short:"e" help:"Cap on simulations per betting phase (0 for no cap)"`
}

func (f SearchFlags) apply(cfg *config.Config) error {
	if f.Duration != 0 {
		cfg.Search.Duration = f.Duration.String()
	}
	if f.Episodes != 0 {
		cfg.Search.Episodes = f.Episodes
	}
	return cfg.Validate()
}

type PlayCmd struct {
	SearchFlags
	Seed int64 `help:"Random seed for a reproducible hand (0 for random)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if err := c.SearchFlags.apply(cfg); err != nil {
		return err
	}
	options, err := cfg.SearchOptions()
	if err != nil {
		return err
	}

	bot, err := player.NewBot("bot", options...)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	deck := game.NewDeck(game.NewRand(uint64(seed)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := engine.LocalEngine(bot, deck, game.NewStandardRules())
	e.Narrator = newConsoleNarrator(os.Stdout)
	_, err = e.Run(ctx)
	return err
}

type EvalCmd struct {
	Hole  string `arg:"" help:"Two hole cards, e.g. 'As Ks'"`
	Board string `arg:"" optional:"" help:"Three to five board cards, e.g. 'Qs Js Ts'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	if _, err := g.load(); err != nil {
		return err
	}
	hole, err := game.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("invalid hole cards: %w", err)
	}
	board, err := game.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	rank, best, err := game.EvalBoard(hole, board)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", headerStyle.Render("Best hand:"), handStyle.Render(game.FormatCards(best[:])))
	fmt.Printf("%s %s\n", headerStyle.Render("Category: "), categoryStyle.Render(rank.String()))
	return nil
}

type SimulateCmd struct {
	SearchFlags
	Hands     int    `short:"n" help:"Number of hands to play"`
	Workers   int    `short:"w" help:"Hands played concurrently"`
	Seed      int64  `help:"Base random seed (0 for random)"`
	OutputDir string `short:"o" help:"Directory for CSV records" type:"path"`
	NoRecords bool   `help:"Do not write CSV records"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Hands != 0 {
		cfg.Simulation.Hands = c.Hands
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.OutputDir != "" {
		cfg.Simulation.OutputDir = c.OutputDir
	}
	if c.NoRecords {
		cfg.Simulation.OutputDir = ""
	}
	if err := c.SearchFlags.apply(cfg); err != nil {
		return err
	}
	options, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	duration, err := cfg.SearchDuration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := experiments.Run(ctx, experiments.Settings{
		Name:    "simulation",
		Hands:   cfg.Simulation.Hands,
		Workers: cfg.Simulation.Workers,
		Seed:    cfg.Simulation.Seed,
		Agent: metrics.AgentConfig{
			ID:          1,
			Duration:    duration,
			Episodes:    cfg.Search.Episodes,
			Exploration: *cfg.Search.Exploration,
			Threshold:   *cfg.Search.Threshold,
		},
		Options:   options,
		OutputDir: cfg.Simulation.OutputDir,
	})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, report)
	return nil
}
