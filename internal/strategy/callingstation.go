package strategy

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/starterbot/internal/state"
)

// CallingStationPolicy never folds and never raises
type CallingStationPolicy struct {
	logger *log.Logger
}

// NewCallingStation creates a new calling station
func NewCallingStation(logger *log.Logger) *CallingStationPolicy {
	return &CallingStationPolicy{logger: logger}
}

func (c *CallingStationPolicy) Decide(_ context.Context, view state.View, _ time.Time) (string, error) {
	return passive(amountToCall(view, c.logger)).String(), nil
}
