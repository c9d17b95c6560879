package tombola

import (
	"testing"

	"github.com/shared-digitaltechnologies/tombola/random"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(" " + string(kind) + " ")
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	k, err := ParseKind("ShuffleBag")
	require.NoError(t, err)
	require.Equal(t, ShuffleBagKind, k)

	_, err = ParseKind("bingocage")
	require.ErrorContains(t, err, "Invalid tombola kind 'bingocage'")
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	for i := 1; i < len(kinds); i++ {
		require.Less(t, string(kinds[i-1]), string(kinds[i]))
	}
}

func TestKindIdsAreStableAndDistinct(t *testing.T) {
	seen := map[string]Kind{}
	for _, kind := range Kinds() {
		id := kind.Id()
		require.Equal(t, id, kind.Id())
		require.EqualValues(t, 5, id.Version())
		_, dup := seen[id.String()]
		require.False(t, dup)
		seen[id.String()] = kind
	}
}

func TestNewBuildsEveryKind(t *testing.T) {
	tb, err := New(ShuffleBagKind, nil, 1, 2)
	require.NoError(t, err)
	require.IsType(t, &ShuffleBag[int]{}, tb)

	tb, err = New(IndexBlowerKind, nil, 1, 2)
	require.NoError(t, err)
	require.IsType(t, &IndexBlower[int]{}, tb)

	tb, err = New(ListKind, nil, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, tb.Inspect())

	_, err = New[int](Kind("bingocage"), nil)
	require.Error(t, err)
}

func TestNewListIsReproducibleWithSeed(t *testing.T) {
	draw := func() []int {
		tb, err := New(ListKind, random.Seed(21).NewFakerOffset(0), 1, 2, 3, 4, 5, 6)
		require.NoError(t, err)
		var res []int
		for tb.Loaded() {
			item, err := tb.Pick()
			require.NoError(t, err)
			res = append(res, item)
		}
		return res
	}
	require.Equal(t, draw(), draw())
}
