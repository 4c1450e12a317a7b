package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  HandType
	}{
		{"high card", []string{"Ah", "Kd", "9c", "5s", "2h"}, HighCard},
		{"pocket pair", []string{"7h", "7d"}, Pair},
		{"unpaired hole cards", []string{"7h", "2d"}, HighCard},
		{"two pair", []string{"Ah", "Ad", "9c", "9s", "2h"}, TwoPair},
		{"trips", []string{"Qh", "Qd", "Qc", "5s", "2h"}, ThreeOfAKind},
		{"straight", []string{"9h", "Td", "Jc", "Qs", "Kh"}, Straight},
		{"wheel", []string{"Ah", "2d", "3c", "4s", "5h"}, Straight},
		{"broadway", []string{"Th", "Jd", "Qc", "Ks", "Ah"}, Straight},
		{"no wraparound", []string{"Qh", "Kd", "Ac", "2s", "3h"}, HighCard},
		{"flush", []string{"2h", "7h", "9h", "Jh", "Kh"}, Flush},
		{"full house", []string{"Kh", "Kd", "Kc", "5s", "5h"}, FullHouse},
		{"two trips is a full house", []string{"Kh", "Kd", "Kc", "5s", "5h", "5d", "2c"}, FullHouse},
		{"quads", []string{"9h", "9d", "9c", "9s", "2h"}, FourOfAKind},
		{"straight flush", []string{"5s", "6s", "7s", "8s", "9s", "Ah", "Ad"}, StraightFlush},
		{"flush and straight apart", []string{"5s", "6s", "7s", "8s", "9h", "2s", "Ad"}, Flush},
		{"seven card two pair", []string{"Ah", "Ad", "9c", "9s", "2h", "2d", "Kc"}, TwoPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(MustParseCards(tt.cards...)))
		})
	}
}

func TestHandTypeString(t *testing.T) {
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "Unknown", HandType(99).String())
}

func TestScoreOrdering(t *testing.T) {
	royal, err := Score(MustParseCards("Ah", "Kh", "Qh", "Jh", "Th"))
	require.NoError(t, err)
	pair, err := Score(MustParseCards("2h", "2d", "7c", "9s", "Jh"))
	require.NoError(t, err)
	high, err := Score(MustParseCards("2h", "4d", "7c", "9s", "Jh"))
	require.NoError(t, err)

	assert.Greater(t, royal, pair)
	assert.Greater(t, pair, high)
}

func TestScoreSixAndSevenCards(t *testing.T) {
	five, err := Score(MustParseCards("Ah", "Ad", "Ac", "Kh", "Kd"))
	require.NoError(t, err)

	six, err := Score(MustParseCards("2c", "Ah", "Ad", "Ac", "Kh", "Kd"))
	require.NoError(t, err)
	assert.Equal(t, five, six)

	seven, err := Score(MustParseCards("2c", "3s", "Ah", "Ad", "Ac", "Kh", "Kd"))
	require.NoError(t, err)
	assert.Equal(t, five, seven)
}

func TestScoreCardCount(t *testing.T) {
	_, err := Score(MustParseCards("Ah", "Kd"))
	assert.ErrorIs(t, err, ErrCardCount)
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(MustParseCards("Ah", "Ad", "Ac", "Kh", "Kd"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		c1   string
		c2   string
		want Category
	}{
		{"pocket aces", "As", "Ah", CategoryPremium},
		{"pocket jacks", "Jh", "Jd", CategoryPremium},
		{"ace king offsuit", "Ac", "Kh", CategoryPremium},
		{"pocket tens", "Tc", "Th", CategoryStrong},
		{"ace jack", "Ad", "Jc", CategoryStrong},
		{"pocket sevens", "7h", "7c", CategoryMedium},
		{"king queen suited", "Ks", "Qs", CategoryMedium},
		{"pocket deuces", "2h", "2c", CategoryWeak},
		{"suited connectors", "8h", "9h", CategoryWeak},
		{"king queen offsuit", "Ks", "Qd", CategoryTrash},
		{"seven deuce", "7h", "2c", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := MustParseCards(tt.c1, tt.c2)
			assert.Equal(t, tt.want, Categorize(cards[0], cards[1]))
			assert.Equal(t, tt.want, Categorize(cards[1], cards[0]))
		})
	}
}

func TestPercentile(t *testing.T) {
	aces := MustParseCards("As", "Ah")
	assert.Equal(t, "AA", HandClass(aces[0], aces[1]))
	assert.InDelta(t, 1.0, Percentile(aces[0], aces[1]), 1e-9)

	worst := MustParseCards("2c", "7h")
	assert.Equal(t, "72o", HandClass(worst[0], worst[1]))
	assert.InDelta(t, 0.0, Percentile(worst[0], worst[1]), 1e-9)

	suited := MustParseCards("Kh", "Ah")
	assert.Equal(t, "AKs", HandClass(suited[0], suited[1]))
	assert.Greater(t, Percentile(suited[0], suited[1]), 0.9)
}

func TestDeckSample(t *testing.T) {
	hole := MustParseCards("Ah", "Kd")
	d := NewDeck(rand.New(rand.NewPCG(1, 2)), hole...)
	assert.Equal(t, 50, d.CardsRemaining())

	drawn := d.Sample(5)
	require.Len(t, drawn, 5)

	seen := map[Card]bool{}
	for _, c := range drawn {
		assert.NotContains(t, hole, c)
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
	}

	assert.Len(t, d.Sample(100), 50)
	assert.Len(t, Remaining(), 52)
}
