// Package bot runs the directive loop: it reads engine lines, applies them to
// the state store, and hands decision requests to the gateway.
package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// Result describes what processing a line did
type Result int

const (
	// Skipped lines were empty
	Skipped Result = iota
	// Applied lines mutated the state store
	Applied
	// Decided lines triggered a decision and wrote a move
	Decided
	// Rejected lines were dropped with a diagnostic
	Rejected
)

func (r Result) String() string {
	switch r {
	case Skipped:
		return "skipped"
	case Applied:
		return "applied"
	case Decided:
		return "decided"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Bot owns one game session: the state store and the gateway to the policy
type Bot struct {
	store   *state.Store
	gateway *Gateway
	logger  *log.Logger
}

// Option configures a Bot
type Option func(*options)

type options struct {
	logger *log.Logger
	clock  quartz.Clock
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock used to compute decision deadlines
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// New creates a bot that writes decisions from policy to out
func New(policy Policy, out io.Writer, opts ...Option) *Bot {
	o := options{
		logger: log.Default(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bot{
		store:   state.NewStore(),
		gateway: NewGateway(policy, out, o.clock, o.logger),
		logger:  o.logger.WithPrefix("bot"),
	}
}

// State returns a read-only view of the current game state
func (b *Bot) State() state.View {
	return b.store.View()
}

// Process handles a single line. Recoverable problems are logged and
// reported as Rejected with a nil error; any returned error is fatal.
func (b *Bot) Process(ctx context.Context, line string) (Result, error) {
	d, err := protocol.Parse(line)
	switch {
	case errors.Is(err, protocol.ErrEmptyLine):
		return Skipped, nil
	case protocol.IsRecoverable(err):
		b.logger.Warn(err.Error())
		return Rejected, nil
	case err != nil:
		return Rejected, err
	}

	if d.Kind != protocol.KindDecision {
		b.store.Apply(d)
		b.logger.Debug("Applied directive", "kind", d.Kind, "line", d.Line)
		return Applied, nil
	}

	if _, err := b.gateway.Request(ctx, b.store.View(), d.Budget); err != nil {
		return Decided, err
	}
	return Decided, nil
}

// Run processes lines from r until end of stream or until ctx is done.
// End of stream is not an error.
func (b *Bot) Run(ctx context.Context, r io.Reader) error {
	defer b.logTiming()

	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read directives: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		if line != "" {
			if _, err := b.Process(ctx, line); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			return nil
		}
	}
}

func (b *Bot) logTiming() {
	stats := b.gateway.Stats()
	if stats.Count == 0 {
		return
	}
	b.logger.Info("Decision timing",
		"decisions", stats.Count,
		"mean", stats.Mean(),
		"stddev", stats.StdDev(),
		"p95", stats.Percentile(0.95),
		"max", stats.Max,
		"overruns", stats.Overruns)
}
