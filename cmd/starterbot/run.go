package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/bot"
	"github.com/lox/starterbot/internal/config"
	"github.com/lox/starterbot/internal/strategy"
)

type RunCmd struct {
	Strategy string `short:"s" env:"STARTERBOT_STRATEGY" help:"Decision strategy (overrides config)"`
	Config   string `short:"c" default:"starterbot.hcl" env:"STARTERBOT_CONFIG" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" env:"STARTERBOT_LOG_LEVEL" help:"Log level debug|info|warn|error (overrides config)"`
	LogFile  string `env:"STARTERBOT_LOG_FILE" help:"Write logs to this file instead of stderr (overrides config)"`
	Seed     *int64 `env:"STARTERBOT_SEED" help:"Seed for randomised strategies, 0 for a random seed (overrides config)"`
}

func (c *RunCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the engine, so logs go to stderr or a file
	var logOut io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := cfg.Logging.NewLogger(logOut)

	clock := quartz.NewReal()
	policy, err := strategy.New(cfg.Bot.Strategy, cfg, logger, clock)
	if err != nil {
		return err
	}

	logger.Info("Starting bot",
		"strategy", cfg.Bot.Strategy,
		"config", c.Config,
		"version", version)

	b := bot.New(policy, os.Stdout, bot.WithLogger(logger), bot.WithClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	runErr := make(chan error, 1)
	go func() {
		runErr <- b.Run(ctx, os.Stdin)
	}()

	select {
	case sig := <-interrupt:
		logger.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
		return nil
	case err := <-runErr:
		if err != nil {
			logger.Error("Bot stopped", "error", err)
		}
		return err
	}
}

func (c *RunCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if c.Strategy != "" {
		cfg.Bot.Strategy = c.Strategy
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Logging.File = c.LogFile
	}
	if c.Seed != nil {
		cfg.Bot.Seed = *c.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
