package strategy

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// RaiserPolicy raises pot plus twice the current bet on every decision
type RaiserPolicy struct {
	logger *log.Logger
}

// NewRaiser creates a new always-raise policy
func NewRaiser(logger *log.Logger) *RaiserPolicy {
	return &RaiserPolicy{logger: logger}
}

func (r *RaiserPolicy) Decide(_ context.Context, view state.View, _ time.Time) (string, error) {
	pot, err := view.Pot()
	if err != nil {
		r.logger.Debug("No pot available", "error", err)
		pot = 0
	}
	bet := amountToCall(view, r.logger)

	amount := pot + 2*bet
	if amount <= 0 {
		amount = bigBlind(view)
	}
	return protocol.Move{Action: protocol.Raise, Amount: capToStack(view, amount)}.String(), nil
}
