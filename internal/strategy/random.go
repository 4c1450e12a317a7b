package strategy

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// RandomPolicy picks uniformly among the legal actions
type RandomPolicy struct {
	rng            *rand.Rand
	maxRaiseBlinds int
	logger         *log.Logger
}

// NewRandom creates a random policy raising at most maxRaiseBlinds big blinds
func NewRandom(rng *rand.Rand, maxRaiseBlinds int, logger *log.Logger) *RandomPolicy {
	return &RandomPolicy{
		rng:            rng,
		maxRaiseBlinds: max(maxRaiseBlinds, 1),
		logger:         logger,
	}
}

func (r *RandomPolicy) Decide(_ context.Context, view state.View, _ time.Time) (string, error) {
	toCall := amountToCall(view, r.logger)

	legal := []protocol.Action{protocol.Check, protocol.Raise}
	if toCall > 0 {
		legal = []protocol.Action{protocol.Fold, protocol.Call, protocol.Raise}
	}

	move := protocol.Move{Action: legal[r.rng.IntN(len(legal))]}
	switch move.Action {
	case protocol.Call:
		move.Amount = toCall
	case protocol.Raise:
		blinds := 1 + r.rng.IntN(r.maxRaiseBlinds)
		move.Amount = capToStack(view, blinds*bigBlind(view))
	}

	r.logger.Debug("Random action", "move", move, "to_call", toCall)
	return move.String(), nil
}
