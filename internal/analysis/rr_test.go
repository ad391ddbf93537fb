package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/heartrate"
)

func TestSummarizeRR(t *testing.T) {
	stats, err := SummarizeRR([]heartrate.RRInterval{512, 1024, 1536})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.N)
	assert.Equal(t, 0.5, stats.Min)
	assert.Equal(t, 1.5, stats.Max)
	assert.InDelta(t, 1.0, stats.Mean, 1e-12)
	assert.InDelta(t, 1.0/6, stats.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/6), stats.StdDev, 1e-12)
}

func TestSummarizeRREmpty(t *testing.T) {
	_, err := SummarizeRR(nil)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestRRStatsString(t *testing.T) {
	s := RRStats{N: 2, Min: 0.5, Max: 1, Mean: 0.75, Variance: 0.0625, StdDev: 0.25}
	assert.Equal(t, "n=2, min=0.5, max=1, mean=0.75, σ²=0.0625, σ=0.25", s.String())
}

func TestWithin(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 1.5}, Within([]float64{0.5, 1, 2, 3, 1.5}, 1, 2))
	assert.Nil(t, Within([]float64{5}, 1, 2))
}
