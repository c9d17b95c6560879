package tombola

import (
	"cmp"

	"github.com/shared-digitaltechnologies/tombola/random"
)

// List is a plain slice that satisfies Tombola on its own. It carries no
// state besides its elements and takes nothing from Defaults.
//
//	l := tombola.List[int]{1, 2, 3}
//	l.Load(4, 5)
//	n, err := l.Pick()
type List[T cmp.Ordered] []T

var _ Tombola[int] = (*List[int])(nil)

var listRand = random.NewCryptoFaker()

func (l *List[T]) Load(items ...T) {
	*l = append(*l, items...)
}

func (l *List[T]) Pick() (T, error) {
	return l.PickWith(listRand)
}

// PickWith is Pick drawing from the given source.
func (l *List[T]) PickWith(rand random.Rand) (T, error) {
	item, rest, err := pickAt(rand, *l, "List")
	*l = rest
	return item, err
}

func (l *List[T]) Loaded() bool {
	return len(*l) > 0
}

func (l *List[T]) Inspect() []T {
	return sortedCopy(*l)
}
