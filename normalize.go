package dataprep

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinMaxNormalize rescales values into [0, 1] against the input's own
// minimum and maximum. The lo and hi parameters are accepted for
// interface compatibility but are not applied to the output range; the
// observed extremes always win. If every element is equal the result is
// all zeros. An empty input yields an empty output.
func MinMaxNormalize(values []float64, lo, hi float64) []float64 {
	_ = lo
	_ = hi
	if len(values) == 0 {
		return []float64{}
	}

	minVal := floats.Min(values)
	maxVal := floats.Max(values)
	normalized := make([]float64, len(values))
	if minVal == maxVal {
		return normalized
	}
	span := maxVal - minVal
	for i, v := range values {
		normalized[i] = (v - minVal) / span
	}
	return normalized
}

// ZScoreStandardize centers values on the population mean and scales by
// the population standard deviation (divide by N, not N-1). A zero
// deviation yields all zeros; an empty input yields an empty output.
func ZScoreStandardize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	mean := stat.Mean(values, nil)
	std := stat.PopStdDev(values, nil)
	standardized := make([]float64, len(values))
	if std == 0 {
		return standardized
	}
	for i, v := range values {
		standardized[i] = (v - mean) / std
	}
	return standardized
}
