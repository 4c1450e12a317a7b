package bot

import (
	"context"
	"time"

	"github.com/lox/starterbot/internal/state"
)

// Policy decides on a move. It receives a read-only view of the game state
// and the deadline by which it must answer; the bot does not preempt it.
// The returned string is written to the engine as a single line, by
// convention "<action> <amount>".
type Policy interface {
	Decide(ctx context.Context, view state.View, deadline time.Time) (string, error)
}

// PolicyFunc adapts a function to the Policy interface
type PolicyFunc func(ctx context.Context, view state.View, deadline time.Time) (string, error)

func (f PolicyFunc) Decide(ctx context.Context, view state.View, deadline time.Time) (string, error) {
	return f(ctx, view, deadline)
}
