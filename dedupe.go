package dataprep

// Dedupe returns the distinct values of the input with set semantics:
// the result's order is not specified and callers must not rely on it.
// Distinctness follows Go equality for T, so Number(1) and Text("1")
// are different values.
func Dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	distinct := make([]T, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	return distinct
}
