// Package motion looks for repeated movement in accelerometer traces by
// cross-correlating a reference stretch of signal against what follows it.
package motion

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptySignal is returned when a correlation input has no samples.
var ErrEmptySignal = errors.New("empty signal")

// Correlate returns the cross-correlation of a and b over the lags at which
// the shorter input lies entirely within the longer one:
//
//	c(τ) = Σ a[l]·b[l−τ]
//
// When len(a) >= len(b) the lags run 0..len(a)-len(b); otherwise they run
// len(a)-len(b)..0. The returned lags index the correlation values.
func Correlate(a, b []float64) (corr []float64, lags []int, err error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptySignal
	}
	lags = Lags(len(a), len(b))
	corr = make([]float64, len(lags))
	for i, lag := range lags {
		if len(a) >= len(b) {
			corr[i] = floats.Dot(a[lag:lag+len(b)], b)
		} else {
			corr[i] = floats.Dot(a, b[-lag:-lag+len(a)])
		}
	}
	return corr, lags, nil
}

// Lags lists the lags Correlate evaluates for inputs of length m and n.
func Lags(m, n int) []int {
	if m <= 0 || n <= 0 {
		return nil
	}
	lo, hi := 0, m-n
	if m < n {
		lo, hi = m-n, 0
	}
	lags := make([]int, 0, hi-lo+1)
	for lag := lo; lag <= hi; lag++ {
		lags = append(lags, lag)
	}
	return lags
}

// FindPeaks returns the indices of local maxima of x with a height of at
// least minHeight. A flat-topped peak is reported at the middle of its
// plateau, rounding down. The first and last samples are never peaks.
func FindPeaks(x []float64, minHeight float64) []int {
	var peaks []int
	last := len(x) - 1
	for i := 1; i < last; i++ {
		if x[i-1] >= x[i] {
			continue
		}
		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			if x[i] >= minHeight {
				peaks = append(peaks, (i+ahead-1)/2)
			}
			i = ahead
		}
	}
	return peaks
}

// PeakLags returns the peaks of corr within fraction of its maximum.
func PeakLags(corr []float64, fraction float64) []int {
	if len(corr) == 0 {
		return nil
	}
	return FindPeaks(corr, floats.Max(corr)*fraction)
}
