package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(n int64) *int64 { return &n }

func TestRunCmdLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starterbot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
bot {
  strategy = "raiser"
}
logging {
  level = "info"
}
`), 0o644))

	cmd := &RunCmd{Config: path}
	cfg, err := cmd.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "raiser", cfg.Bot.Strategy)
	assert.Equal(t, "info", cfg.Logging.Level)

	cmd = &RunCmd{Config: path, Strategy: "equity", LogLevel: "debug", LogFile: "bot.log", Seed: seed(9)}
	cfg, err = cmd.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "equity", cfg.Bot.Strategy)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "bot.log", cfg.Logging.File)
	assert.Equal(t, int64(9), cfg.Bot.Seed)
}

func TestRunCmdZeroSeedOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starterbot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
bot {
  seed = 42
}
`), 0o644))

	cfg, err := (&RunCmd{Config: path}).loadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Bot.Seed)

	cfg, err = (&RunCmd{Config: path, Seed: seed(0)}).loadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.Bot.Seed)
}

func TestRunCmdInvalidConfig(t *testing.T) {
	cmd := &RunCmd{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "chatty"}
	_, err := cmd.loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
