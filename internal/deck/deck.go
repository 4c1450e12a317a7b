package deck

import (
	"math/rand/v2"
	"slices"
)

// Deck is a shuffled stack of cards for sampling unseen cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a deck holding every card not in exclude
func NewDeck(rng *rand.Rand, exclude ...Card) *Deck {
	return &Deck{
		cards: Remaining(exclude...),
		rng:   rng,
	}
}

// Remaining returns the standard 52-card deck minus exclude, in suit/rank order
func Remaining(exclude ...Card) []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(suit, rank)
			if !slices.Contains(exclude, c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

// Sample returns n distinct cards chosen at random. The returned slice
// aliases the deck and is only valid until the next call.
func (d *Deck) Sample(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	// Partial Fisher-Yates over the first n positions
	for i := 0; i < n; i++ {
		j := i + d.rng.IntN(len(d.cards)-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d.cards[:n]
}

// CardsRemaining returns the number of cards in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
