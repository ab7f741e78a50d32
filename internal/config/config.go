// Package config loads game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MaxStartingSticks bounds the configurable pile size. Search depth is
// linear in the count so this is a UX bound, not a performance one.
const MaxStartingSticks = 50

// Config represents the complete game configuration. Blocks are
// pointers so an HCL file may omit them entirely.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// GameSettings contains the rules and pacing of an interactive game
type GameSettings struct {
	StartingSticks int    `hcl:"starting_sticks,optional"`
	AIDelayMs      int    `hcl:"ai_delay_ms,optional"`
	PlayerName     string `hcl:"player_name,optional"`
	HumanFirst     bool   `hcl:"human_first,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			StartingSticks: 15,
			AIDelayMs:      600,
			PlayerName:     "You",
			HumanFirst:     true,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "matchsticks.log",
		},
	}
}

// Load reads configuration from an HCL file, filling unset fields with
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	config := &Config{}
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyDefaults(config *Config) {
	defaults := Default()

	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.Log == nil {
		config.Log = defaults.Log
	}
	if config.Game.StartingSticks == 0 {
		config.Game.StartingSticks = defaults.Game.StartingSticks
	}
	if config.Game.AIDelayMs == 0 {
		config.Game.AIDelayMs = defaults.Game.AIDelayMs
	}
	if config.Game.PlayerName == "" {
		config.Game.PlayerName = defaults.Game.PlayerName
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.File == "" {
		config.Log.File = defaults.Log.File
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Game.StartingSticks < 1 || c.Game.StartingSticks > MaxStartingSticks {
		return fmt.Errorf("starting_sticks must be between 1 and %d, got %d", MaxStartingSticks, c.Game.StartingSticks)
	}
	if c.Game.AIDelayMs < 0 {
		return fmt.Errorf("ai_delay_ms must not be negative, got %d", c.Game.AIDelayMs)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
