// Package deck is a 52-card French deck whose positions can be written as
// well as read, which is all an in-place shuffle needs.
package deck

import (
	"fmt"
	"strings"

	"github.com/shared-digitaltechnologies/tombola/random"
)

var (
	Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	Suits = []string{"spades", "diamonds", "clubs", "hearts"}
)

type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string {
	return c.Rank + " of " + c.Suit
}

// Sequence is an indexable, sized collection.
type Sequence[E any] interface {
	Len() int
	At(i int) E
}

// MutableSequence is a Sequence whose positions can be assigned.
type MutableSequence[E any] interface {
	Sequence[E]
	SetAt(i int, v E)
}

type FrenchDeck struct {
	cards []Card
}

var _ MutableSequence[Card] = (*FrenchDeck)(nil)

func New() *FrenchDeck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &FrenchDeck{cards: cards}
}

func (d *FrenchDeck) Len() int {
	return len(d.cards)
}

func (d *FrenchDeck) At(i int) Card {
	return d.cards[i]
}

func (d *FrenchDeck) SetAt(i int, c Card) {
	d.cards[i] = c
}

// Cards returns a copy of the deck in its current order.
func (d *FrenchDeck) Cards() []Card {
	res := make([]Card, len(d.cards))
	copy(res, d.cards)
	return res
}

// Choice returns a random card without removing it.
func (d *FrenchDeck) Choice(rand random.Rand) Card {
	return random.Pick(rand, d.cards...)
}

func (d *FrenchDeck) String() string {
	names := make([]string, len(d.cards))
	for i, c := range d.cards {
		names[i] = c.String()
	}
	return fmt.Sprintf("FrenchDeck[%s]", strings.Join(names, ", "))
}

// Shuffle permutes seq in place using only Len, At and SetAt.
func Shuffle[E any](seq MutableSequence[E], rand random.Rand) {
	for i := seq.Len() - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		vi, vj := seq.At(i), seq.At(j)
		seq.SetAt(i, vj)
		seq.SetAt(j, vi)
	}
}

var suitValues = map[string]int{"spades": 3, "hearts": 2, "diamonds": 1, "clubs": 0}

// SpadesHigh ranks cards by rank first and suit second, spades highest.
// It returns -1 for a card that is not part of a French deck.
func SpadesHigh(c Card) int {
	suit, ok := suitValues[c.Suit]
	if !ok {
		return -1
	}
	for i, rank := range Ranks {
		if rank == c.Rank {
			return i*len(suitValues) + suit
		}
	}
	return -1
}

// BySpadesHigh inverts SpadesHigh.
func BySpadesHigh(value int) (Card, bool) {
	if value < 0 || value >= len(Ranks)*len(Suits) {
		return Card{}, false
	}
	rank := Ranks[value/len(suitValues)]
	for suit, v := range suitValues {
		if v == value%len(suitValues) {
			return Card{Rank: rank, Suit: suit}, true
		}
	}
	return Card{}, false
}
