// Package strategy provides sample decision policies for the bot and a
// registry to select them by name.
package strategy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/bot"
	"github.com/lox/starterbot/internal/config"
	"github.com/lox/starterbot/internal/deck"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/randutil"
	"github.com/lox/starterbot/internal/state"
)

const (
	CallingStation = "calling-station"
	Random         = "random"
	Raiser         = "raiser"
	Chart          = "chart"
	Equity         = "equity"
)

var descriptions = map[string]string{
	CallingStation: "Checks when free, calls any bet",
	Random:         "Picks a random legal action",
	Raiser:         "Raises pot plus twice the current bet every time",
	Chart:          "Raises premium holdings, calls medium ones, otherwise checks or folds",
	Equity:         "Monte Carlo equity against random holdings, compared with pot odds",
}

// Names returns the registered strategy names in sorted order
func Names() []string {
	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns a one-line description of a strategy
func Describe(name string) string {
	return descriptions[name]
}

// New builds the named policy
func New(name string, cfg *config.Config, logger *log.Logger, clock quartz.Clock) (bot.Policy, error) {
	logger = logger.WithPrefix(name)

	switch strings.ToLower(name) {
	case CallingStation:
		return NewCallingStation(logger), nil
	case Random:
		return NewRandom(randutil.New(cfg.Bot.Seed), cfg.Random.MaxRaiseBlinds, logger), nil
	case Raiser:
		return NewRaiser(logger), nil
	case Chart:
		return NewChart(logger), nil
	case Equity:
		return NewEquity(*cfg.Equity, randutil.New(cfg.Bot.Seed), clock, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// amountToCall reads the current bet, treating a missing or malformed value
// as nothing to call.
func amountToCall(view state.View, logger *log.Logger) int {
	bet, err := view.CurrentBet()
	if err != nil {
		logger.Debug("No current bet available", "error", err)
		return 0
	}
	return bet
}

func passive(toCall int) protocol.Move {
	if toCall == 0 {
		return protocol.Move{Action: protocol.Check}
	}
	return protocol.Move{Action: protocol.Call, Amount: toCall}
}

func bigBlind(view state.View) int {
	bb, err := view.BigBlind()
	if err != nil || bb <= 0 {
		return 1
	}
	return bb
}

// capToStack limits a raise to our stack when the stack is known
func capToStack(view state.View, amount int) int {
	stack, err := view.MyStack()
	if err != nil || stack <= 0 {
		return amount
	}
	return min(amount, stack)
}

// holeAndBoard parses our hole cards and the table cards
func holeAndBoard(view state.View) (hole, board []deck.Card, err error) {
	hole, err = deck.ParseCards(view.MyHand())
	if err != nil {
		return nil, nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return nil, nil, fmt.Errorf("hole cards: want 2, have %d", len(hole))
	}
	board, err = deck.ParseCards(view.TableCards())
	if err != nil {
		return nil, nil, fmt.Errorf("table cards: %w", err)
	}
	return hole, board, nil
}
