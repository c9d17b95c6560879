package tombolatest_test

import (
	"errors"
	"testing"

	"github.com/shared-digitaltechnologies/tombola"
	"github.com/shared-digitaltechnologies/tombola/tombolatest"
	"github.com/stretchr/testify/require"
)

// wrongErrorPicker reports emptiness with a plain error.
type wrongErrorPicker struct {
	tombola.List[int]
}

func (p *wrongErrorPicker) Pick() (int, error) {
	if len(p.List) == 0 {
		return 0, errors.New("nothing left")
	}
	return p.List.Pick()
}

// stickyPicker never removes what it returns.
type stickyPicker struct {
	tombola.List[int]
}

func (p *stickyPicker) Pick() (int, error) {
	if len(p.List) == 0 {
		return 0, &tombola.EmptyError{Picker: "stickyPicker"}
	}
	return p.List[0], nil
}

// unsortedPicker inspects in storage order.
type unsortedPicker struct {
	tombola.List[int]
}

func (p *unsortedPicker) Inspect() []int {
	return append([]int(nil), p.List...)
}

func TestCheckAcceptsList(t *testing.T) {
	err := tombolatest.CheckInts(func(items ...int) tombola.Tombola[int] {
		l := tombola.List[int](append([]int(nil), items...))
		return &l
	})
	require.NoError(t, err)
}

func TestCheckRejectsWrongEmptyError(t *testing.T) {
	err := tombolatest.Check(func(items ...int) tombola.Tombola[int] {
		return &wrongErrorPicker{List: append([]int(nil), items...)}
	}, 1, 1, 2, 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "EmptyPick")
	require.Contains(t, err.Error(), "Drain")
}

func TestCheckRejectsDuplication(t *testing.T) {
	err := tombolatest.Check(func(items ...int) tombola.Tombola[int] {
		return &stickyPicker{List: append([]int(nil), items...)}
	}, 1, 2, 3)
	require.ErrorContains(t, err, "drained more items than loaded")
}

func TestCheckRejectsUnsortedInspect(t *testing.T) {
	err := tombolatest.Check(func(items ...int) tombola.Tombola[int] {
		return &unsortedPicker{List: append([]int(nil), items...)}
	}, 3, 1, 2)
	require.ErrorContains(t, err, "Inspect() = [3 1 2], want [1 2 3]")
}

func TestRunStrings(t *testing.T) {
	tombolatest.Run(t, func(items ...string) tombola.Tombola[string] {
		return tombola.NewIndexBlower(nil, items...)
	}, "pear", "apple", "fig", "apple")
}
