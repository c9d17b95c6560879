package random

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedString(t *testing.T) {
	require.Equal(t, "0x00000000000000ff", Seed(255).String())
	require.Equal(t, "Seed(0x00000000000000ff)", Seed(255).GoString())
}

func TestSeedFakerIsReproducible(t *testing.T) {
	a := Seed(42).NewFakerOffset(7)
	b := Seed(42).NewFakerOffset(7)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeedFakerOffsetsDiffer(t *testing.T) {
	a := Seed(42).NewFaker([]byte("left"))
	b := Seed(42).NewFaker([]byte("right"))

	same := true
	for i := 0; i < 32; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	require.False(t, same)
}

func TestNewSeed(t *testing.T) {
	s1, err := NewSeed()
	require.NoError(t, err)
	s2, err := NewSeed()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}

func TestShuffleKeepsAllElements(t *testing.T) {
	f := Seed(1).NewFakerOffset(0)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(f, values)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
}

func TestShuffleNoopForShortSlices(t *testing.T) {
	f := NewCryptoFaker()
	values := []int{1}
	Shuffle(f, values)
	require.Equal(t, []int{1}, values)

	var empty []int
	Shuffle(f, empty)
	require.Empty(t, empty)
}

func TestPick(t *testing.T) {
	f := NewCryptoFaker()
	for i := 0; i < 16; i++ {
		require.Contains(t, []string{"a", "b", "c"}, Pick(f, "a", "b", "c"))
	}
	require.Panics(t, func() { Pick[int](f) })
}

func TestSplitN(t *testing.T) {
	fakers := Seed(3).NewFakerOffset(0).SplitN(3)
	require.Len(t, fakers, 3)
	require.NotEqual(t, fakers[0].Uint64(), fakers[1].Uint64())
}

func TestItems(t *testing.T) {
	f := Seed(9).NewFakerOffset(0)
	for _, kind := range []ItemKind{NameItems, WordItems, AnimalItems, ColorItems} {
		items, err := f.Items(kind, 5)
		require.NoError(t, err)
		require.Len(t, items, 5)
		for _, item := range items {
			require.NotEmpty(t, item)
		}
	}

	_, err := f.Items(ItemKind("planet"), 1)
	require.Error(t, err)
}

func TestItemKindSet(t *testing.T) {
	var k ItemKind
	require.NoError(t, k.Set("Animal"))
	require.Equal(t, AnimalItems, k)
	require.Error(t, k.Set("planet"))
}
