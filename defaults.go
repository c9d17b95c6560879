package tombola

import (
	"cmp"
	"errors"
	"fmt"
)

// DrainInspect picks every item, loads them all back and returns them
// sorted. It is only correct for pickers whose Pick and Load round-trip
// without loss.
//
// A Pick error other than ErrEmpty breaks the Picker contract: the drained
// items are restored and DrainInspect panics with that error.
func DrainInspect[T cmp.Ordered](p Picker[T]) []T {
	var items []T
	for {
		item, err := p.Pick()
		if err != nil {
			p.Load(items...)
			if errors.Is(err, ErrEmpty) {
				break
			}
			panic(fmt.Errorf("tombola: drain for inspect: %w", err))
		}
		items = append(items, item)
	}

	return sortedCopy(items)
}

// Inspect calls p.Inspect when p has one, else DrainInspect.
func Inspect[T cmp.Ordered](p Picker[T]) []T {
	if in, ok := p.(interface{ Inspect() []T }); ok {
		return in.Inspect()
	}
	return DrainInspect(p)
}

// Loaded calls p.Loaded when p has one, else checks Inspect.
func Loaded[T cmp.Ordered](p Picker[T]) bool {
	if l, ok := p.(interface{ Loaded() bool }); ok {
		return l.Loaded()
	}
	return len(Inspect(p)) > 0
}

// Defaults supplies the derived Loaded and Inspect to the picker it is
// bound to. Embed it and bind it with NewDefaults. An unbound Defaults
// reports an empty picker.
type Defaults[T cmp.Ordered] struct {
	self Picker[T]
}

func NewDefaults[T cmp.Ordered](self Picker[T]) Defaults[T] {
	return Defaults[T]{self: self}
}

func (d Defaults[T]) Inspect() []T {
	if d.self == nil {
		return []T{}
	}
	return DrainInspect(d.self)
}

// Loaded goes through the owner's Inspect, so an owner overriding only
// Inspect still gets a cheap Loaded.
func (d Defaults[T]) Loaded() bool {
	if d.self == nil {
		return false
	}
	return len(Inspect(d.self)) > 0
}

type withDefaults[T cmp.Ordered] struct {
	Picker[T]
	Defaults[T]
}

// WithDefaults upgrades a bare Picker to a Tombola. Methods p already has
// are kept.
func WithDefaults[T cmp.Ordered](p Picker[T]) Tombola[T] {
	if t, ok := p.(Tombola[T]); ok {
		return t
	}
	return &withDefaults[T]{Picker: p, Defaults: NewDefaults(p)}
}

func (w *withDefaults[T]) Inspect() []T {
	if in, ok := w.Picker.(interface{ Inspect() []T }); ok {
		return in.Inspect()
	}
	return w.Defaults.Inspect()
}

func (w *withDefaults[T]) Loaded() bool {
	if l, ok := w.Picker.(interface{ Loaded() bool }); ok {
		return l.Loaded()
	}
	return w.Defaults.Loaded()
}
