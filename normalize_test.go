package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestMinMaxNormalize(t *testing.T) {
	got := MinMaxNormalize([]float64{1, 2, 3, 4, 5}, 0, 1)
	assert.Equal(t, []float64{0.0, 0.25, 0.5, 0.75, 1.0}, got)
}

func TestMinMaxNormalizeIgnoresBounds(t *testing.T) {
	// The bound parameters are accepted but the input's own extremes win.
	got := MinMaxNormalize([]float64{1, 2, 3, 4, 5}, 10, 20)
	assert.Equal(t, []float64{0.0, 0.25, 0.5, 0.75, 1.0}, got)
}

func TestMinMaxNormalizeDegenerate(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, MinMaxNormalize([]float64{7, 7, 7}, 0, 1))
}

func TestMinMaxNormalizeEmpty(t *testing.T) {
	assert.Empty(t, MinMaxNormalize([]float64{}, 0, 1))
}

func TestZScoreStandardize(t *testing.T) {
	got := ZScoreStandardize([]float64{1, 2, 3, 4, 5})
	require.Len(t, got, 5)

	mean := stat.Mean(got, nil)
	std := stat.PopStdDev(got, nil)
	assert.InDelta(t, 0, mean, 1e-6)
	assert.InDelta(t, 1, std, 1e-6)

	// Symmetric input standardizes symmetrically around zero.
	assert.InDelta(t, 0, got[2], 1e-9)
	assert.InDelta(t, -got[0], got[4], 1e-9)
}

func TestZScoreStandardizeZeroStd(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, ZScoreStandardize([]float64{4, 4, 4}))
}

func TestZScoreStandardizeEmpty(t *testing.T) {
	assert.Empty(t, ZScoreStandardize([]float64{}))
}
