// Package tombolatest runs the same behavioral battery against any
// tombola.Tombola implementation.
//
//	func TestMyPicker(t *testing.T) {
//		tombolatest.RunInts(t, func(items ...int) tombola.Tombola[int] {
//			return NewMyPicker(items...)
//		})
//	}
package tombolatest

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/shared-digitaltechnologies/tombola"
	"github.com/stretchr/testify/require"
)

// Factory builds an instance pre-loaded with items.
type Factory[T cmp.Ordered] func(items ...T) tombola.Tombola[T]

// FromZero adapts a constructor of empty instances, typically one
// returning a pointer to a zero value, into a Factory that loads the items
// afterwards. Running the battery through it checks that the zero value is
// usable.
func FromZero[T cmp.Ordered](zero func() tombola.Tombola[T]) Factory[T] {
	return func(items ...T) tombola.Tombola[T] {
		p := zero()
		p.Load(items...)
		return p
	}
}

type check[T cmp.Ordered] struct {
	name string
	fn   func(newFn Factory[T], items []T) error
}

func checks[T cmp.Ordered]() []check[T] {
	return []check[T]{
		{"EmptyPick", checkEmptyPick[T]},
		{"Drain", checkDrain[T]},
		{"Inspect", checkInspect[T]},
		{"LoadNothing", checkLoadNothing[T]},
	}
}

// IntScenarios are the item sets RunInts and CheckInts use.
var IntScenarios = map[string][]int{
	"duplicates": {1, 1, 2, 3},
	"single":     {42},
	"range":      {12, 3, 7, 0, 19, 5, 5, 8, 1, 14, 2, 16, 11, 9, 4, 18, 6, 10, 13, 15, 17},
	"empty":      {},
}

// Check runs every check against newFn loaded with items and joins the
// failures.
func Check[T cmp.Ordered](newFn Factory[T], items ...T) error {
	var errs []error
	for _, c := range checks[T]() {
		if err := c.fn(newFn, items); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	return errors.Join(errs...)
}

// CheckInts runs Check for every IntScenarios entry.
func CheckInts(newFn Factory[int]) error {
	var errs []error
	for _, name := range scenarioNames() {
		if err := Check(newFn, IntScenarios[name]...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Run reports every check as a subtest of t.
func Run[T cmp.Ordered](t *testing.T, newFn Factory[T], items ...T) {
	t.Helper()
	for _, c := range checks[T]() {
		t.Run(c.name, func(t *testing.T) {
			require.NoError(t, c.fn(newFn, items))
		})
	}
}

// RunInts runs Run for every IntScenarios entry.
func RunInts(t *testing.T, newFn Factory[int]) {
	t.Helper()
	for _, name := range scenarioNames() {
		t.Run(name, func(t *testing.T) {
			Run(t, newFn, IntScenarios[name]...)
		})
	}
}

func scenarioNames() []string {
	names := make([]string, 0, len(IntScenarios))
	for name := range IntScenarios {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func checkEmptyPick[T cmp.Ordered](newFn Factory[T], _ []T) error {
	p := newFn()
	if p.Loaded() {
		return errors.New("fresh empty instance reports Loaded")
	}
	if got := p.Inspect(); len(got) != 0 {
		return fmt.Errorf("fresh empty instance inspects as %v", got)
	}
	return expectEmpty(p)
}

func checkDrain[T cmp.Ordered](newFn Factory[T], items []T) error {
	p := newFn(items...)

	var drained []T
	for {
		loaded := p.Loaded()
		item, err := p.Pick()
		if err != nil {
			if !errors.Is(err, tombola.ErrEmpty) {
				return fmt.Errorf("pick failed with %v, want ErrEmpty", err)
			}
			if loaded {
				return fmt.Errorf("Loaded was true but Pick failed after %d items", len(drained))
			}
			break
		}
		if !loaded {
			return fmt.Errorf("Loaded was false but Pick returned %v", item)
		}
		drained = append(drained, item)
		if len(drained) > len(items) {
			return fmt.Errorf("drained more items than loaded (%d > %d)", len(drained), len(items))
		}
	}

	if !sameMultiset(items, drained) {
		return fmt.Errorf("drained %v, want a permutation of %v", drained, items)
	}
	if p.Loaded() {
		return errors.New("Loaded after draining")
	}
	return expectEmpty(p)
}

func checkInspect[T cmp.Ordered](newFn Factory[T], items []T) error {
	p := newFn()
	p.Load(items...)

	want := sorted(items)
	first := p.Inspect()
	if !slices.Equal(first, want) {
		return fmt.Errorf("Inspect() = %v, want %v", first, want)
	}

	second := p.Inspect()
	if !slices.Equal(first, second) {
		return fmt.Errorf("Inspect is not idempotent: %v then %v", first, second)
	}

	if len(first) > 0 {
		first[0] = first[len(first)-1]
		if third := p.Inspect(); !slices.Equal(third, want) {
			return fmt.Errorf("Inspect result aliases storage: %v after mutating snapshot", third)
		}
	}

	if p.Loaded() != (len(items) > 0) {
		return fmt.Errorf("Loaded() = %v with %d items", p.Loaded(), len(items))
	}
	return nil
}

func checkLoadNothing[T cmp.Ordered](newFn Factory[T], items []T) error {
	p := newFn(items...)
	before := p.Inspect()
	p.Load()
	if after := p.Inspect(); !slices.Equal(before, after) {
		return fmt.Errorf("loading nothing changed Inspect from %v to %v", before, after)
	}
	return nil
}

func expectEmpty[T cmp.Ordered](p tombola.Tombola[T]) error {
	item, err := p.Pick()
	if err == nil {
		return fmt.Errorf("Pick on empty instance returned %v", item)
	}
	var emptyErr *tombola.EmptyError
	if !errors.Is(err, tombola.ErrEmpty) || !errors.As(err, &emptyErr) {
		return fmt.Errorf("Pick on empty instance failed with %v (%T), want *EmptyError", err, err)
	}
	return nil
}

func sorted[T cmp.Ordered](items []T) []T {
	res := slices.Clone(items)
	slices.Sort(res)
	return res
}

func sameMultiset[T cmp.Ordered](a, b []T) bool {
	return slices.Equal(sorted(a), sorted(b))
}
