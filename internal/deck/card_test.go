package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "Ah", want: Card{Suit: Hearts, Rank: Ace}},
		{input: "Td", want: Card{Suit: Diamonds, Rank: Ten}},
		{input: "2c", want: Card{Suit: Clubs, Rank: Two}},
		{input: "Ks", want: Card{Suit: Spades, Rank: King}},
		{input: "qH", want: Card{Suit: Hearts, Rank: Queen}},
		{input: "Xs", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "10h", wantErr: true},
		{input: "A", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, c := range Remaining() {
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards([]string{"Ah", " Kd"})
	require.NoError(t, err)
	assert.Equal(t, []Card{{Suit: Hearts, Rank: Ace}, {Suit: Diamonds, Rank: King}}, cards)

	cards, err = ParseCards([]string{})
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards([]string{"Ah", "??"})
	assert.Error(t, err)
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardPretty(t *testing.T) {
	assert.Equal(t, "A♥", MustParseCards("Ah")[0].Pretty())
	assert.True(t, MustParseCards("Ah")[0].IsRed())
	assert.False(t, MustParseCards("Ac")[0].IsRed())
}
