package tombola

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainCopySource(t *testing.T) {
	b := NewIndexBlower[string](nil, "a", "b", "c")
	src := DrainCopySource[string](b, func(item string) []any {
		return []any{item, len(item)}
	})

	var rows [][]any
	for src.Next() {
		values, err := src.Values()
		require.NoError(t, err)
		rows = append(rows, values)
	}
	require.NoError(t, src.Err())
	require.Len(t, rows, 3)
	require.ElementsMatch(t, []any{"a", "b", "c"}, []any{rows[0][0], rows[1][0], rows[2][0]})
	require.False(t, b.Loaded())
	require.False(t, src.Next())
}

func TestDrainCopySourceDefaultRow(t *testing.T) {
	src := DrainCopySource[int](NewShuffleBag(nil, 7), nil)
	require.True(t, src.Next())
	values, err := src.Values()
	require.NoError(t, err)
	require.Equal(t, []any{7}, values)
	require.False(t, src.Next())
	require.NoError(t, src.Err())
}

func TestDrainCopySourceReportsForeignErrors(t *testing.T) {
	src := DrainCopySource[int](&brokenPicker{fifo{items: []int{1}}}, nil)
	require.True(t, src.Next())
	require.False(t, src.Next())
	require.EqualError(t, src.Err(), "jammed")
	require.False(t, errors.Is(src.Err(), ErrEmpty))
}

// wrappingPicker wraps the error of its inner picker.
type wrappingPicker struct {
	Picker[int]
}

func (w *wrappingPicker) Pick() (int, error) {
	item, err := w.Picker.Pick()
	if err != nil {
		return 0, fmt.Errorf("feeder: %w", err)
	}
	return item, nil
}

func TestDrainCopySourceWrappedErrors(t *testing.T) {
	src := DrainCopySource[int](&wrappingPicker{&brokenPicker{fifo{items: []int{1}}}}, nil)
	require.True(t, src.Next())
	require.False(t, src.Next())
	require.EqualError(t, src.Err(), "feeder: jammed")
	require.False(t, src.Next())

	src = DrainCopySource[int](&wrappingPicker{&fifo{items: []int{1}}}, nil)
	require.True(t, src.Next())
	require.False(t, src.Next())
	require.NoError(t, src.Err())
}

func TestWriteCopyText(t *testing.T) {
	b := NewShuffleBag[string](&stepRand{steps: []int{0}}, "a\tb", "c\\d", "e\nf")
	position := 0
	src := DrainCopySource[string](b, func(item string) []any {
		position++
		if position == 2 {
			return []any{position, item, nil}
		}
		return []any{position, item, len(item)}
	})

	var buf bytes.Buffer
	rows, err := WriteCopyText(&buf, src)
	require.NoError(t, err)
	require.EqualValues(t, 3, rows)
	// Always swapping with index 0 leaves the bag as [c\\d e\nf a\tb].
	require.Equal(t, "1\ta\\tb\t3\n"+
		"2\te\\nf\t\\N\n"+
		"3\tc\\\\d\t3\n", buf.String())
	require.False(t, b.Loaded())
}

func TestWriteCopyTextWritesNothingOnError(t *testing.T) {
	src := DrainCopySource[int](&brokenPicker{fifo{items: []int{1, 2}}}, nil)

	var buf bytes.Buffer
	rows, err := WriteCopyText(&buf, src)
	require.EqualError(t, err, "jammed")
	require.Zero(t, rows)
	require.Empty(t, buf.String())
}
