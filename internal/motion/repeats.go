package motion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrShortSignal is returned when a trace cannot hold the reference and
	// search windows.
	ErrShortSignal = errors.New("signal too short for repeat detection")
	// ErrFlatSignal is returned when a trace has zero variance.
	ErrFlatSignal = errors.New("signal has no variance")
)

// RepeatOptions controls DetectRepeats. Periods are seconds.
type RepeatOptions struct {
	SamplePeriod float64
	WindowPeriod float64
	// PeakFraction is the share of the strongest correlation a peak must
	// reach to count as a repeat.
	PeakFraction float64
}

// DefaultRepeatOptions matches a 100 Hz accelerometer and a three second
// movement.
var DefaultRepeatOptions = RepeatOptions{
	SamplePeriod: 0.01,
	WindowPeriod: 3.0,
	PeakFraction: 0.9,
}

// WindowSamples is the reference window length in samples.
func (o RepeatOptions) WindowSamples() int {
	return int(o.WindowPeriod/o.SamplePeriod + 0.5)
}

// Repeats is the outcome of DetectRepeats.
type Repeats struct {
	Mean     float64
	Variance float64
	// Correlation is normalised so that a window matching the reference
	// exactly scores close to 1.
	Correlation []float64
	Lags        []int
	// Peaks index Correlation and Lags.
	Peaks []int
}

// PeakTimes returns the lag of each peak in seconds.
func (r Repeats) PeakTimes(samplePeriod float64) []float64 {
	out := make([]float64, len(r.Peaks))
	for i, p := range r.Peaks {
		out[i] = float64(r.Lags[p]) * samplePeriod
	}
	return out
}

// DetectRepeats takes the first window of the mean-removed signal as the
// reference movement and correlates it against the following two windows.
// Peaks in the correlation mark where the movement recurs.
func DetectRepeats(signal []float64, opts RepeatOptions) (Repeats, error) {
	if opts.SamplePeriod <= 0 || opts.WindowPeriod <= 0 {
		return Repeats{}, fmt.Errorf("sample period %g and window period %g must be positive", opts.SamplePeriod, opts.WindowPeriod)
	}
	n := opts.WindowSamples()
	if n == 0 || len(signal) < 3*n {
		return Repeats{}, fmt.Errorf("need %d samples, have %d: %w", 3*n, len(signal), ErrShortSignal)
	}

	mean, variance := stat.PopMeanVariance(signal, nil)
	if variance == 0 {
		return Repeats{}, ErrFlatSignal
	}
	centred := make([]float64, len(signal))
	copy(centred, signal)
	floats.AddConst(-mean, centred)

	reference := centred[:n]
	window := centred[n : 3*n]
	corr, lags, err := Correlate(reference, window)
	if err != nil {
		return Repeats{}, err
	}
	floats.Scale(1/(float64(n)*variance), corr)

	return Repeats{
		Mean:        mean,
		Variance:    variance,
		Correlation: corr,
		Lags:        lags,
		Peaks:       PeakLags(corr, opts.PeakFraction),
	}, nil
}

// Periodicity correlates the first head samples of signal against the whole
// trace, the quick look used to eyeball a stride period.
func Periodicity(signal []float64, head int) (corr []float64, lags []int, err error) {
	if head <= 0 {
		return nil, nil, fmt.Errorf("periodicity head %d must be positive", head)
	}
	if head > len(signal) {
		head = len(signal)
	}
	return Correlate(signal[:head], signal)
}
