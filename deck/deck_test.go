package deck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shared-digitaltechnologies/tombola/random"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := New()
	require.Equal(t, 52, d.Len())
	require.Equal(t, Card{Rank: "2", Suit: "spades"}, d.At(0))
	require.Equal(t, Card{Rank: "A", Suit: "hearts"}, d.At(51))
}

func TestSetAt(t *testing.T) {
	d := New()
	d.SetAt(0, Card{Rank: "Q", Suit: "hearts"})
	require.Equal(t, "Q of hearts", d.At(0).String())
}

func TestShuffleKeepsEveryCard(t *testing.T) {
	d := New()
	before := d.Cards()

	Shuffle[Card](d, random.Seed(7).NewFakerOffset(0))
	after := d.Cards()

	less := func(a, b Card) bool { return SpadesHigh(a) < SpadesHigh(b) }
	if diff := cmp.Diff(before, after, cmpopts.SortSlices(less)); diff != "" {
		t.Fatalf("shuffle changed the set of cards (-before +after):\n%s", diff)
	}
	require.NotEqual(t, before, after)
}

func TestChoice(t *testing.T) {
	d := New()
	c := d.Choice(random.NewCryptoFaker())
	require.NotEqual(t, -1, SpadesHigh(c))
}

func TestSpadesHigh(t *testing.T) {
	require.Equal(t, 0, SpadesHigh(Card{Rank: "2", Suit: "clubs"}))
	require.Equal(t, 51, SpadesHigh(Card{Rank: "A", Suit: "spades"}))
	require.Equal(t, -1, SpadesHigh(Card{Rank: "1", Suit: "spades"}))
	require.Equal(t, -1, SpadesHigh(Card{Rank: "A", Suit: "stars"}))

	for _, c := range New().Cards() {
		back, ok := BySpadesHigh(SpadesHigh(c))
		require.True(t, ok)
		require.Equal(t, c, back)
	}

	_, ok := BySpadesHigh(52)
	require.False(t, ok)
}
