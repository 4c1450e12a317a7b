package strategy

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/starterbot/internal/config"
	"github.com/lox/starterbot/internal/deck"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/randutil"
	"github.com/lox/starterbot/internal/state"
	"golang.org/x/sync/errgroup"
)

// deadlineCheckInterval is how many samples a worker runs between clock reads
const deadlineCheckInterval = 64

// Estimate is the outcome of a Monte Carlo equity run
type Estimate struct {
	Wins    int
	Ties    int
	Samples int
}

// Equity returns the share of pots won, counting ties as half
func (e Estimate) Equity() float64 {
	if e.Samples == 0 {
		return 0
	}
	return (float64(e.Wins) + float64(e.Ties)/2) / float64(e.Samples)
}

func (e *Estimate) add(o Estimate) {
	e.Wins += o.Wins
	e.Ties += o.Ties
	e.Samples += o.Samples
}

// Simulation describes one equity run
type Simulation struct {
	Hole      []deck.Card
	Board     []deck.Card
	Opponents int
	Samples   int
	Workers   int
	StopAt    time.Time
}

// Simulate deals random opponent holdings and board completions, splitting
// the samples across workers. Workers stop early once the clock reaches
// StopAt or ctx is done.
func Simulate(ctx context.Context, sim Simulation, clock quartz.Clock, rng *rand.Rand) (Estimate, error) {
	workers := max(sim.Workers, 1)
	perWorker := sim.Samples / workers
	remainder := sim.Samples % workers

	used := append(append([]deck.Card{}, sim.Hole...), sim.Board...)
	results := make([]Estimate, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}
		workerRNG := randutil.Split(rng)

		g.Go(func() error {
			est, err := runWorker(ctx, sim, used, n, clock, workerRNG)
			results[w] = est
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Estimate{}, err
	}

	var total Estimate
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

func runWorker(ctx context.Context, sim Simulation, used []deck.Card, samples int, clock quartz.Clock, rng *rand.Rand) (Estimate, error) {
	var est Estimate
	d := deck.NewDeck(rng, used...)
	boardNeeded := 5 - len(sim.Board)
	opponents := min(max(sim.Opponents, 1), (d.CardsRemaining()-boardNeeded)/2)
	if opponents < 1 {
		return est, nil
	}

	hero := make([]deck.Card, 0, 7)
	villain := make([]deck.Card, 0, 7)
	board := make([]deck.Card, 0, 5)

	for i := range samples {
		if i%deadlineCheckInterval == 0 {
			if ctx.Err() != nil || !clock.Now().Before(sim.StopAt) {
				break
			}
		}

		drawn := d.Sample(boardNeeded + 2*opponents)
		board = append(append(board[:0], sim.Board...), drawn[:boardNeeded]...)

		hero = append(append(hero[:0], sim.Hole...), board...)
		heroScore, err := deck.Score(hero)
		if err != nil {
			return est, err
		}

		best := true
		tied := false
		for o := range opponents {
			hole := drawn[boardNeeded+2*o : boardNeeded+2*o+2]
			villain = append(append(villain[:0], hole...), board...)
			score, err := deck.Score(villain)
			if err != nil {
				return est, err
			}
			if score > heroScore {
				best = false
				break
			}
			if score == heroScore {
				tied = true
			}
		}

		switch {
		case best && tied:
			est.Ties++
		case best:
			est.Wins++
		}
		est.Samples++
	}
	return est, nil
}

// EquityPolicy compares Monte Carlo equity with pot odds
type EquityPolicy struct {
	settings config.EquitySettings
	rng      *rand.Rand
	clock    quartz.Clock
	fallback *ChartPolicy
	logger   *log.Logger
}

// NewEquity creates a new equity policy
func NewEquity(settings config.EquitySettings, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) *EquityPolicy {
	return &EquityPolicy{
		settings: settings,
		rng:      rng,
		clock:    clock,
		fallback: NewChart(logger),
		logger:   logger,
	}
}

func (e *EquityPolicy) Decide(ctx context.Context, view state.View, deadline time.Time) (string, error) {
	toCall := amountToCall(view, e.logger)

	hole, board, err := holeAndBoard(view)
	if err != nil {
		e.logger.Warn("Cannot read cards, playing passively", "error", err)
		return passive(toCall).String(), nil
	}
	if len(board) > 5 {
		e.logger.Warn("Too many table cards, playing passively", "table", len(board))
		return passive(toCall).String(), nil
	}

	est, err := Simulate(ctx, Simulation{
		Hole:      hole,
		Board:     board,
		Opponents: len(view.Opponents()),
		Samples:   e.settings.Samples,
		Workers:   e.settings.Workers,
		StopAt:    deadline.Add(-e.settings.Margin()),
	}, e.clock, e.rng)
	if err != nil {
		return "", err
	}

	if est.Samples == 0 {
		e.logger.Warn("No time left to simulate, falling back to the chart")
		return e.fallback.Decide(ctx, view, deadline)
	}

	pot, err := view.Pot()
	if err != nil {
		pot = 0
	}
	equity := est.Equity()

	var move protocol.Move
	switch {
	case equity >= e.settings.RaiseThreshold:
		amount := max(pot+toCall, 2*bigBlind(view))
		move = protocol.Move{Action: protocol.Raise, Amount: capToStack(view, amount)}
	case toCall == 0:
		move = protocol.Move{Action: protocol.Check}
	case equity > potOdds(pot, toCall):
		move = protocol.Move{Action: protocol.Call, Amount: toCall}
	default:
		move = protocol.Move{Action: protocol.Fold}
	}

	e.logger.Debug("Equity decision",
		"equity", equity,
		"samples", est.Samples,
		"pot", pot,
		"to_call", toCall,
		"move", move)
	return move.String(), nil
}

// potOdds is the share of the final pot we must contribute to call
func potOdds(pot, toCall int) float64 {
	if toCall <= 0 {
		return 0
	}
	return float64(toCall) / float64(pot+toCall)
}
