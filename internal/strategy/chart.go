package strategy

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/starterbot/internal/deck"
	"github.com/lox/starterbot/internal/protocol"
	"github.com/lox/starterbot/internal/state"
)

// ChartPolicy plays a fixed chart: pre-flop by hole card category with the
// starting-hand ranking as a fallback, post-flop by the best made hand.
type ChartPolicy struct {
	logger *log.Logger
}

// NewChart creates a new chart policy
func NewChart(logger *log.Logger) *ChartPolicy {
	return &ChartPolicy{logger: logger}
}

type strength int

const (
	weak strength = iota
	medium
	premium
)

// playablePercentile promotes off-chart holdings that rank in the top
// starting hands, such as KQo or A9s, to calling hands.
const playablePercentile = 0.85

func (c *ChartPolicy) Decide(_ context.Context, view state.View, _ time.Time) (string, error) {
	toCall := amountToCall(view, c.logger)

	hole, board, err := holeAndBoard(view)
	if err != nil {
		c.logger.Warn("Cannot read cards, playing passively", "error", err)
		return passive(toCall).String(), nil
	}

	s := c.classify(hole, board)
	switch s {
	case premium:
		amount := capToStack(view, max(2*bigBlind(view), 2*toCall))
		return protocol.Move{Action: protocol.Raise, Amount: amount}.String(), nil
	case medium:
		return passive(toCall).String(), nil
	}

	if toCall == 0 {
		return protocol.Move{Action: protocol.Check}.String(), nil
	}
	return protocol.Move{Action: protocol.Fold}.String(), nil
}

func (c *ChartPolicy) classify(hole, board []deck.Card) strength {
	if len(board) == 0 {
		category := deck.Categorize(hole[0], hole[1])
		c.logger.Debug("Pre-flop holding", "hand", deck.HandClass(hole[0], hole[1]), "category", category)
		switch category {
		case deck.CategoryPremium:
			return premium
		case deck.CategoryStrong, deck.CategoryMedium:
			return medium
		}
		if pct := deck.Percentile(hole[0], hole[1]); pct >= playablePercentile {
			c.logger.Debug("Playable by ranking", "percentile", pct)
			return medium
		}
		return weak
	}

	made := deck.Classify(append(append([]deck.Card{}, hole...), board...))
	c.logger.Debug("Post-flop holding", "made", made)
	switch {
	case made >= deck.ThreeOfAKind:
		return premium
	case made >= deck.Pair:
		return medium
	}
	return weak
}
