package dataprep

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	got := Flatten([][]int{{1, 2}, {3, 4}, {5}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestFlattenOneLevelOnly(t *testing.T) {
	// Deeper nesting is carried through untouched.
	got := Flatten([][]any{{[]any{1.0, 2.0}, 3.0}, {4.0}})
	assert.Equal(t, []any{[]any{1.0, 2.0}, 3.0, 4.0}, got)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten([][]string{}))
	assert.Empty(t, Flatten([][]string{{}, {}}))
}

func TestShuffleSeededIsDeterministic(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	first := ShuffleSeeded(in, 42)
	second := ShuffleSeeded(in, 42)
	assert.Equal(t, first, second)

	long := make([]int, 64)
	for i := range long {
		long[i] = i
	}
	assert.NotEqual(t, ShuffleSeeded(long, 42), ShuffleSeeded(long, 43))
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []int{5, 3, 3, 1, 2, 9, 9, 9}
	got := Shuffle(in)
	require.Len(t, got, len(in))

	wantSorted := append([]int(nil), in...)
	gotSorted := append([]int(nil), got...)
	sort.Ints(wantSorted)
	sort.Ints(gotSorted)
	assert.Equal(t, wantSorted, gotSorted)
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	_ = ShuffleSeeded(in, 7)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in)
}

func TestShuffleVariesAcrossCalls(t *testing.T) {
	in := make([]int, 64)
	for i := range in {
		in[i] = i
	}
	a := Shuffle(in)
	b := Shuffle(in)
	// With 64 elements two identical unseeded permutations are
	// vanishingly unlikely.
	assert.NotEqual(t, a, b)
}
