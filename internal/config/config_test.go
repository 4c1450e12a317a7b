package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starterbot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
bot {
  strategy = "equity"
  seed     = 42
}

logging {
  level = "debug"
  file  = "bot.log"
}

equity {
  samples         = 500
  workers         = 2
  margin_ms       = 20
  raise_threshold = 0.8
}

random {
  max_raise_blinds = 6
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "equity", cfg.Bot.Strategy)
	assert.Equal(t, int64(42), cfg.Bot.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "bot.log", cfg.Logging.File)
	assert.Equal(t, 500, cfg.Equity.Samples)
	assert.Equal(t, 2, cfg.Equity.Workers)
	assert.Equal(t, 20*time.Millisecond, cfg.Equity.Margin())
	assert.InDelta(t, 0.8, cfg.Equity.RaiseThreshold, 1e-9)
	assert.Equal(t, 6, cfg.Random.MaxRaiseBlinds)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
bot {}
logging {}
equity {
  samples = 100
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	defaults := Default()
	assert.Equal(t, defaults.Bot.Strategy, cfg.Bot.Strategy)
	assert.Equal(t, defaults.Logging.Level, cfg.Logging.Level)
	assert.Equal(t, 100, cfg.Equity.Samples)
	assert.Equal(t, defaults.Equity.Workers, cfg.Equity.Workers)
	assert.Equal(t, defaults.Random, cfg.Random)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
random {
  max_raise_blinds = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "chart", cfg.Bot.Strategy)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Random.MaxRaiseBlinds)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `bot { strategy = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `
bot { colour = "red" }
logging {}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty strategy", func(c *Config) { c.Bot.Strategy = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"zero samples", func(c *Config) { c.Equity.Samples = 0 }},
		{"zero workers", func(c *Config) { c.Equity.Workers = 0 }},
		{"negative margin", func(c *Config) { c.Equity.MarginMS = -1 }},
		{"threshold above one", func(c *Config) { c.Equity.RaiseThreshold = 1.5 }},
		{"no raise room", func(c *Config) { c.Random.MaxRaiseBlinds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := LogSettings{Level: "error"}.NewLogger(&buf)
	assert.Equal(t, log.ErrorLevel, logger.GetLevel())

	logger.Warn("hidden")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, log.WarnLevel, LogSettings{Level: "bogus"}.NewLogger(&buf).GetLevel())
}
