package deck

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

// HandType enumerates made-hand categories ordered from weakest to strongest
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Classify returns the best made-hand category among cards. It accepts any
// number of cards; fewer than five can still form pairs, trips or quads.
func Classify(cards []Card) HandType {
	var rankCount [Ace + 1]int
	var suitCount [Clubs + 1]int
	var rankMask uint16
	var suitMasks [Clubs + 1]uint16

	for _, c := range cards {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
		rankMask |= 1 << c.Rank
		suitMasks[c.Suit] |= 1 << c.Rank
	}

	for suit, n := range suitCount {
		if n >= 5 && hasStraight(suitMasks[suit]) {
			return StraightFlush
		}
	}

	var quads, trips, pairs int
	for _, n := range rankCount {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	switch {
	case quads > 0:
		return FourOfAKind
	case trips > 1 || (trips == 1 && pairs > 0):
		return FullHouse
	}
	for _, n := range suitCount {
		if n >= 5 {
			return Flush
		}
	}
	switch {
	case hasStraight(rankMask):
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs > 1:
		return TwoPair
	case pairs == 1:
		return Pair
	}
	return HighCard
}

// hasStraight checks a rank mask (bit r set for rank r) for five in a row,
// counting the ace as low as well as high
func hasStraight(mask uint16) bool {
	if mask&(1<<Ace) != 0 {
		mask |= 1 << 1
	}
	const five = 0b11111
	for low := 1; low <= int(Ten); low++ {
		if mask>>low&five == five {
			return true
		}
	}
	return false
}

// ErrCardCount is returned when Score is given an unsupported number of cards
var ErrCardCount = errors.New("score needs 5 to 7 cards")

// Score rates the best five-card hand among 5 to 7 cards. Higher scores are
// stronger; scores are only comparable with each other.
func Score(cards []Card) (int16, error) {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPoker(c)
		if err != nil {
			return 0, err
		}
		pcs[i] = pc
	}

	switch len(pcs) {
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], pcs)
		return scoreSign * poker.Eval7(&a7), nil
	case 6:
		return bestOfSix(pcs), nil
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], pcs)
		return scoreSign * poker.Eval5(&a5), nil
	default:
		return 0, fmt.Errorf("%w, got %d", ErrCardCount, len(pcs))
	}
}

var (
	royalFlush = MustParseCards("Ah", "Kh", "Qh", "Jh", "Th")
	sevenHigh  = MustParseCards("7c", "5d", "4h", "3s", "2c")
)

// scoreSign orients raw evaluator scores so that a royal flush outranks a
// seven-high hand.
var scoreSign = func() int16 {
	var best, worst [5]poker.Card
	for i := range 5 {
		best[i] = mustPoker(royalFlush[i])
		worst[i] = mustPoker(sevenHigh[i])
	}
	if poker.Eval5(&best) < poker.Eval5(&worst) {
		return -1
	}
	return 1
}()

func mustPoker(c Card) poker.Card {
	pc, err := toPoker(c)
	if err != nil {
		panic(err)
	}
	return pc
}

// Describe returns a human-readable name for the best hand among cards
func Describe(cards []Card) (string, error) {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPoker(c)
		if err != nil {
			return "", err
		}
		pcs[i] = pc
	}
	return poker.Describe(pcs)
}

func bestOfSix(pcs []poker.Card) int16 {
	var five [5]poker.Card
	var best int16
	for skip := range pcs {
		n := 0
		for i, c := range pcs {
			if i != skip {
				five[n] = c
				n++
			}
		}
		if score := scoreSign * poker.Eval5(&five); skip == 0 || score > best {
			best = score
		}
	}
	return best
}

// toPoker converts to the evaluator's card type, where the ace is rank 1
func toPoker(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	case Spades:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("invalid suit in %v", c)
	}

	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
