package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/runlog/internal/heartrate"
)

// ErrNoSamples is returned when statistics are requested for no data.
var ErrNoSamples = errors.New("no samples")

// RRStats summarises R-R intervals in seconds. Variance and StdDev are
// population figures.
type RRStats struct {
	N        int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	StdDev   float64
}

func (s RRStats) String() string {
	return fmt.Sprintf("n=%d, min=%g, max=%g, mean=%g, σ²=%g, σ=%g",
		s.N, s.Min, s.Max, s.Mean, s.Variance, s.StdDev)
}

// RRSeconds converts intervals to seconds.
func RRSeconds(rr []heartrate.RRInterval) []float64 {
	out := make([]float64, len(rr))
	for i, r := range rr {
		out[i] = r.Seconds()
	}
	return out
}

// SummarizeRR computes RRStats for rr.
func SummarizeRR(rr []heartrate.RRInterval) (RRStats, error) {
	if len(rr) == 0 {
		return RRStats{}, ErrNoSamples
	}
	secs := RRSeconds(rr)
	mean, variance := stat.PopMeanVariance(secs, nil)
	return RRStats{
		N:        len(secs),
		Min:      floats.Min(secs),
		Max:      floats.Max(secs),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// Within returns the values in [lo, hi], keeping their order.
func Within(values []float64, lo, hi float64) []float64 {
	var out []float64
	for _, v := range values {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}
	return out
}
