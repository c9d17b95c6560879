// Package tombola provides randomized, depletable item containers that
// share one contract.
//
// Only Load and Pick are irreducible. Loaded and Inspect can be derived
// from them, so a type may implement just Picker and opt into the derived
// behavior with WithDefaults or by embedding Defaults, or it may implement
// the full Tombola interface itself.
//
// # Implementations
//
//   - ShuffleBag: shuffles on every load, pops from the end.
//   - IndexBlower: draws a random index on every pick.
//   - List: a plain slice type with its own Loaded and Inspect.
//
// None of them are safe for concurrent use; wrap with Synchronized.
package tombola

import (
	"cmp"
	"errors"
)

// Picker is the irreducible part of the contract.
type Picker[T cmp.Ordered] interface {
	// Load adds all items. Loading nothing is a no-op.
	Load(items ...T)
	// Pick removes and returns one item chosen at random. It returns an
	// *EmptyError when no items remain.
	Pick() (T, error)
}

// Tombola is a Picker that can also report and list its contents.
type Tombola[T cmp.Ordered] interface {
	Picker[T]
	// Loaded reports whether at least one item remains.
	Loaded() bool
	// Inspect returns the current items, sorted, as a new slice.
	Inspect() []T
}

// ErrEmpty matches every *EmptyError under errors.Is.
var ErrEmpty = errors.New("tombola is empty")

// EmptyError is returned by Pick when no items remain. Picker names the
// implementation that ran empty.
type EmptyError struct {
	Picker string
}

func (e *EmptyError) Error() string {
	return "pick from empty " + e.Picker
}

func (e *EmptyError) Is(target error) bool {
	return target == ErrEmpty
}
