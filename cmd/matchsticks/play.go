package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/matchsticks/cmd/matchsticks/shared"
	"github.com/lox/matchsticks/internal/config"
	"github.com/lox/matchsticks/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs the interactive TUI game.
type PlayCmd struct {
	Sticks  int    `short:"s" help:"Starting number of sticks (1-50), overrides config" default:"0"`
	Delay   int    `help:"Computer think delay in milliseconds, overrides config" default:"-1"`
	First   string `help:"Who moves first: human or computer" default:""`
	Config  string `short:"c" help:"Path to an HCL config file" type:"path"`
	Debug   bool   `short:"d" help:"Debug logging to the log file"`
}

// Run starts the interactive game.
func (cmd *PlayCmd) Run() error {
	cfg := config.Default()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Sticks > 0 {
		cfg.Game.StartingSticks = cmd.Sticks
	}
	if cmd.Delay >= 0 {
		cfg.Game.AIDelayMs = cmd.Delay
	}
	switch cmd.First {
	case "":
	case "human":
		cfg.Game.HumanFirst = true
	case "computer":
		cfg.Game.HumanFirst = false
	default:
		return fmt.Errorf("unknown first mover %q, want human or computer", cmd.First)
	}
	if cmd.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Print(titleStyle.Render(" Matchsticks: last stick loses "))
	fmt.Println()
	fmt.Println()

	// The TUI owns the terminal, so logs go to a file.
	logger, logFile, err := shared.SetupFileLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger.Info("Starting interactive game",
		"sticks", cfg.Game.StartingSticks,
		"delay_ms", cfg.Game.AIDelayMs,
		"human_first", cfg.Game.HumanFirst)

	return tui.NewSession(cfg, logger).Run()
}
