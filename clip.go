package dataprep

import "math"

// Clip clamps every element into [lo, hi]. No elements are dropped, so
// the output length equals the input length, and the operation is
// idempotent for fixed bounds.
func Clip(values []float64, lo, hi float64) []float64 {
	clipped := make([]float64, len(values))
	for i, v := range values {
		clipped[i] = math.Max(lo, math.Min(v, hi))
	}
	return clipped
}

// LogTransform applies the natural logarithm to every positive element
// and drops the rest, so the output may be shorter than the input.
func LogTransform(values []float64) []float64 {
	transformed := make([]float64, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			continue
		}
		transformed = append(transformed, math.Log(v))
	}
	return transformed
}
