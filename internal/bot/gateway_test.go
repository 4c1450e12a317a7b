package bot

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestGatewayWritesTrimmedLine(t *testing.T) {
	clock := quartz.NewMock(t)
	var out bytes.Buffer
	g := NewGateway(staticPolicy("\traise 40 \n"), &out, clock, quietLogger())

	move, err := g.Request(context.Background(), state.NewStore().View(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "raise 40", move)
	assert.Equal(t, "raise 40\n", out.String())
}

func TestGatewayDeadline(t *testing.T) {
	clock := quartz.NewMock(t)
	start := clock.Now()

	var got time.Time
	policy := PolicyFunc(func(_ context.Context, _ state.View, deadline time.Time) (string, error) {
		got = deadline
		return "check", nil
	})

	var out bytes.Buffer
	g := NewGateway(policy, &out, clock, quietLogger())
	_, err := g.Request(context.Background(), state.NewStore().View(), 750*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, start.Add(750*time.Millisecond), got)
}

func TestGatewayLogsOverrunWithoutPreempting(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)

	policy := PolicyFunc(func(context.Context, state.View, time.Time) (string, error) {
		clock.Advance(2 * time.Second).MustWait(ctx)
		return "fold 0", nil
	})

	var diagnostics bytes.Buffer
	logger := log.NewWithOptions(&diagnostics, log.Options{})

	var out bytes.Buffer
	g := NewGateway(policy, &out, clock, logger)
	move, err := g.Request(ctx, state.NewStore().View(), time.Second)
	require.NoError(t, err)

	assert.Equal(t, "fold 0", move)
	assert.Equal(t, "fold 0\n", out.String())
	assert.Contains(t, diagnostics.String(), "exceeded time budget")

	stats := g.Stats()
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 1, stats.Overruns)
	assert.Equal(t, 2*time.Second, stats.Max)
}

func TestGatewayWriteError(t *testing.T) {
	g := NewGateway(staticPolicy("check 0"), failingWriter{}, quartz.NewMock(t), quietLogger())

	_, err := g.Request(context.Background(), state.NewStore().View(), time.Second)
	assert.Error(t, err)
}
