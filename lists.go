package dataprep

import "math/rand/v2"

// Flatten concatenates one level of nesting into a single slice.
// Elements of the inner slices are copied as-is, so deeper nesting is
// left intact.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}
	flat := make([]T, 0, n)
	for _, inner := range nested {
		flat = append(flat, inner...)
	}
	return flat
}

// Shuffle returns a new slice holding a random permutation of values,
// drawn from the process-wide entropy source. Repeated calls produce
// different permutations.
func Shuffle[T any](values []T) []T {
	return shuffle(values, rand.Shuffle)
}

// ShuffleSeeded returns the permutation of values determined by seed.
// The generator is local to the call, so the same seed always yields
// the same permutation regardless of what other callers do.
func ShuffleSeeded[T any](values []T, seed uint64) []T {
	src := rand.New(rand.NewPCG(seed, seed))
	return shuffle(values, src.Shuffle)
}

func shuffle[T any](values []T, shuf func(n int, swap func(i, j int))) []T {
	out := make([]T, len(values))
	copy(out, values)
	shuf(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
