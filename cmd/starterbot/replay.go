package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/starterbot/internal/replay"
	"github.com/muesli/termenv"
)

type ReplayCmd struct {
	Transcript string `arg:"" type:"existingfile" help:"Transcript file, one directive per line, answers prefixed with '> '"`
	Plain      bool   `help:"Print the final state instead of opening the viewer"`
	NoColor    bool   `help:"Disable colours"`
	LogFile    string `env:"STARTERBOT_LOG_FILE" help:"Write viewer logs to this file"`
}

func (c *ReplayCmd) Run() error {
	if c.Plain || c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	t, err := replay.LoadFile(c.Transcript)
	if err != nil {
		return err
	}

	if c.Plain {
		fmt.Println(replay.RenderFinal(t))
		return nil
	}

	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := log.New(logOut)
	logger.SetLevel(log.DebugLevel)

	program := tea.NewProgram(replay.NewModel(t, logger), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
