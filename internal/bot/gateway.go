package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/state"
	"github.com/lox/starterbot/internal/statistics"
)

// Gateway invokes the decision policy and writes its answer to the engine
type Gateway struct {
	policy Policy
	out    *bufio.Writer
	clock  quartz.Clock
	logger *log.Logger
	stats  statistics.Latency
}

// NewGateway creates a gateway writing decisions to w
func NewGateway(policy Policy, w io.Writer, clock quartz.Clock, logger *log.Logger) *Gateway {
	return &Gateway{
		policy: policy,
		out:    bufio.NewWriter(w),
		clock:  clock,
		logger: logger.WithPrefix("gateway"),
	}
}

// Request asks the policy for a move within budget and writes it as one
// flushed line. The deadline is advisory: a late policy is logged, not cut off.
func (g *Gateway) Request(ctx context.Context, view state.View, budget time.Duration) (string, error) {
	start := g.clock.Now()
	deadline := start.Add(budget)

	move, err := g.policy.Decide(ctx, view, deadline)
	if err != nil {
		return "", fmt.Errorf("decision policy: %w", err)
	}
	move = strings.TrimSpace(move)

	elapsed := g.clock.Since(start)
	g.stats.Add(elapsed, budget)
	if elapsed > budget {
		g.logger.Warn("Decision exceeded time budget",
			"budget", budget,
			"elapsed", elapsed,
			"move", move)
	} else {
		g.logger.Debug("Decision made",
			"budget", budget,
			"elapsed", elapsed,
			"move", move)
	}

	if _, err := g.out.WriteString(move + "\n"); err != nil {
		return "", fmt.Errorf("write move: %w", err)
	}
	if err := g.out.Flush(); err != nil {
		return "", fmt.Errorf("flush move: %w", err)
	}
	return move, nil
}

// Stats returns the timing of every decision so far
func (g *Gateway) Stats() statistics.Latency {
	return g.stats
}
