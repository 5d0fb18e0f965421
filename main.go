package main

import (
	"os"
	"time"

	"holdem/config"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"HCL configuration file" type:"path"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides the config file"`
}

type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play one narrated hand against a random opponent"`
	Eval     EvalCmd     `cmd:"" help:"Show the best five-card hand for hole cards and a board"`
	Simulate SimulateCmd `cmd:"" help:"Play many hands concurrently and record the results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Heads-up hold'em bot that stays or folds by Monte Carlo estimation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration file and applies the log level
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	setupLogger(level)
	return cfg, nil
}

// setupLogger configures zerolog with pretty console output
func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
