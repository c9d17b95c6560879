package tombola

import (
	"cmp"
	"slices"

	"github.com/shared-digitaltechnologies/tombola/random"
)

// IndexBlower keeps items in load order and draws a random index on every
// Pick. The zero value is an empty blower drawing from a crypto-backed
// faker.
type IndexBlower[T cmp.Ordered] struct {
	rand  random.Rand
	items []T
}

var _ Tombola[int] = (*IndexBlower[int])(nil)

// NewIndexBlower copies items into a new blower. A nil rand uses a
// crypto-backed faker.
func NewIndexBlower[T cmp.Ordered](rand random.Rand, items ...T) *IndexBlower[T] {
	if rand == nil {
		rand = random.NewCryptoFaker()
	}
	return &IndexBlower[T]{
		rand:  rand,
		items: slices.Clone(items),
	}
}

func (b *IndexBlower[T]) Load(items ...T) {
	b.items = append(b.items, items...)
}

func (b *IndexBlower[T]) Pick() (T, error) {
	if b.rand == nil {
		b.rand = random.NewCryptoFaker()
	}
	item, rest, err := pickAt(b.rand, b.items, "IndexBlower")
	b.items = rest
	return item, err
}

func (b *IndexBlower[T]) Loaded() bool {
	return len(b.items) > 0
}

func (b *IndexBlower[T]) Inspect() []T {
	return sortedCopy(b.items)
}

// pickAt removes a random element of items, shifting the tail down.
func pickAt[T cmp.Ordered](rand random.Rand, items []T, picker string) (T, []T, error) {
	if len(items) == 0 {
		var zero T
		return zero, items, &EmptyError{Picker: picker}
	}

	i := rand.IntN(len(items))
	item := items[i]
	return item, slices.Delete(items, i, i+1), nil
}

func sortedCopy[T cmp.Ordered](items []T) []T {
	res := slices.Clone(items)
	slices.Sort(res)
	if res == nil {
		res = []T{}
	}
	return res
}
