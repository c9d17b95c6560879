package tombola

import (
	"cmp"

	"github.com/shared-digitaltechnologies/tombola/random"
)

// ShuffleBag reshuffles all of its items on every Load so that Pick can
// simply pop the last one. Loaded and Inspect come from Defaults.
//
// The zero value is an empty bag drawing from a crypto-backed faker. A
// ShuffleBag must not be copied after first use, since copies share the
// backing array.
type ShuffleBag[T cmp.Ordered] struct {
	rand  random.Rand
	items []T
}

var _ Tombola[int] = (*ShuffleBag[int])(nil)

// NewShuffleBag returns a bag loaded with items. A nil rand uses a
// crypto-backed faker.
func NewShuffleBag[T cmp.Ordered](rand random.Rand, items ...T) *ShuffleBag[T] {
	if rand == nil {
		rand = random.NewCryptoFaker()
	}

	b := &ShuffleBag[T]{rand: rand}
	b.Load(items...)
	return b
}

func (b *ShuffleBag[T]) Load(items ...T) {
	if len(items) == 0 {
		return
	}
	if b.rand == nil {
		b.rand = random.NewCryptoFaker()
	}
	b.items = append(b.items, items...)
	random.Shuffle(b.rand, b.items)
}

func (b *ShuffleBag[T]) Pick() (T, error) {
	n := len(b.items)
	if n == 0 {
		var zero T
		return zero, &EmptyError{Picker: "ShuffleBag"}
	}

	item := b.items[n-1]
	b.items = b.items[:n-1]
	return item, nil
}

// Defaults are bound to b on every call so they follow the receiver.
func (b *ShuffleBag[T]) Loaded() bool {
	return NewDefaults[T](b).Loaded()
}

func (b *ShuffleBag[T]) Inspect() []T {
	return NewDefaults[T](b).Inspect()
}
