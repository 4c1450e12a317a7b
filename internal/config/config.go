// Package config loads the bot's HCL configuration file.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete bot configuration
type Config struct {
	Bot     *BotSettings    `hcl:"bot,block"`
	Logging *LogSettings    `hcl:"logging,block"`
	Equity  *EquitySettings `hcl:"equity,block"`
	Random  *RandomSettings `hcl:"random,block"`
}

// BotSettings selects the decision policy
type BotSettings struct {
	Strategy string `hcl:"strategy,optional"`
	Seed     int64  `hcl:"seed,optional"`
}

// LogSettings controls diagnostic output. Logs always go to a file or
// stderr, never to stdout, which belongs to the engine.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// EquitySettings tunes the Monte Carlo equity policy
type EquitySettings struct {
	Samples        int     `hcl:"samples,optional"`
	Workers        int     `hcl:"workers,optional"`
	MarginMS       int     `hcl:"margin_ms,optional"`
	RaiseThreshold float64 `hcl:"raise_threshold,optional"`
}

// RandomSettings tunes the random policy
type RandomSettings struct {
	MaxRaiseBlinds int `hcl:"max_raise_blinds,optional"`
}

// Margin is the part of the time budget the equity policy leaves unused
func (e *EquitySettings) Margin() time.Duration {
	return time.Duration(e.MarginMS) * time.Millisecond
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Bot: &BotSettings{
			Strategy: "chart",
		},
		Logging: &LogSettings{
			Level: "warn",
		},
		Equity: &EquitySettings{
			Samples:        2000,
			Workers:        4,
			MarginMS:       50,
			RaiseThreshold: 0.7,
		},
		Random: &RandomSettings{
			MaxRaiseBlinds: 4,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Bot == nil {
		c.Bot = defaults.Bot
	}
	if c.Bot.Strategy == "" {
		c.Bot.Strategy = defaults.Bot.Strategy
	}
	if c.Logging == nil {
		c.Logging = defaults.Logging
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	if c.Equity == nil {
		c.Equity = defaults.Equity
	}
	if c.Equity.Samples == 0 {
		c.Equity.Samples = defaults.Equity.Samples
	}
	if c.Equity.Workers == 0 {
		c.Equity.Workers = defaults.Equity.Workers
	}
	if c.Equity.MarginMS == 0 {
		c.Equity.MarginMS = defaults.Equity.MarginMS
	}
	if c.Equity.RaiseThreshold == 0 {
		c.Equity.RaiseThreshold = defaults.Equity.RaiseThreshold
	}

	if c.Random == nil {
		c.Random = defaults.Random
	}
	if c.Random.MaxRaiseBlinds == 0 {
		c.Random.MaxRaiseBlinds = defaults.Random.MaxRaiseBlinds
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Bot.Strategy == "" {
		return fmt.Errorf("strategy is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Equity.Samples <= 0 {
		return fmt.Errorf("equity samples must be positive")
	}
	if c.Equity.Workers <= 0 {
		return fmt.Errorf("equity workers must be positive")
	}
	if c.Equity.MarginMS < 0 {
		return fmt.Errorf("equity margin cannot be negative")
	}
	if c.Equity.RaiseThreshold <= 0 || c.Equity.RaiseThreshold > 1 {
		return fmt.Errorf("equity raise threshold must be in (0, 1]")
	}

	if c.Random.MaxRaiseBlinds < 1 {
		return fmt.Errorf("random max raise must be at least one big blind")
	}

	return nil
}

// NewLogger creates a logger writing to w at the configured level
func (l LogSettings) NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	switch l.Level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
