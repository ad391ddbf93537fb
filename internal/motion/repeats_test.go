package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine returns n samples of a unit sine with the given period in samples.
func sine(n, period int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}
	return out
}

func TestDetectRepeats(t *testing.T) {
	// one-second stride at 100 Hz
	r, err := DetectRepeats(sine(900, 100), DefaultRepeatOptions)
	require.NoError(t, err)

	assert.InDelta(t, 0, r.Mean, 1e-9)
	assert.InDelta(t, 0.5, r.Variance, 1e-9)
	require.Len(t, r.Correlation, 301)
	assert.Equal(t, -300, r.Lags[0])
	assert.Equal(t, 0, r.Lags[300])

	assert.Equal(t, []int{100, 200}, r.Peaks)
	for _, p := range r.Peaks {
		assert.InDelta(t, 1, r.Correlation[p], 1e-9)
	}
	times := r.PeakTimes(DefaultRepeatOptions.SamplePeriod)
	require.Len(t, times, 2)
	assert.InDelta(t, -2, times[0], 1e-9)
	assert.InDelta(t, -1, times[1], 1e-9)
}

func TestDetectRepeatsErrors(t *testing.T) {
	_, err := DetectRepeats(sine(899, 100), DefaultRepeatOptions)
	assert.ErrorIs(t, err, ErrShortSignal)

	_, err = DetectRepeats(make([]float64, 900), DefaultRepeatOptions)
	assert.ErrorIs(t, err, ErrFlatSignal)

	_, err = DetectRepeats(sine(900, 100), RepeatOptions{SamplePeriod: 0, WindowPeriod: 3})
	assert.Error(t, err)
}

func TestWindowSamples(t *testing.T) {
	assert.Equal(t, 300, DefaultRepeatOptions.WindowSamples())
	assert.Equal(t, 150, RepeatOptions{SamplePeriod: 0.02, WindowPeriod: 3}.WindowSamples())
}

func TestPeriodicity(t *testing.T) {
	signal := sine(400, 50)
	corr, lags, err := Periodicity(signal, 100)
	require.NoError(t, err)
	assert.Len(t, corr, 301)
	assert.Equal(t, -300, lags[0])

	corr, _, err = Periodicity(signal[:10], 100)
	require.NoError(t, err)
	assert.Len(t, corr, 1)

	for _, head := range []int{0, -5} {
		_, _, err = Periodicity(signal, head)
		assert.Error(t, err, "head %d", head)
	}
}

func TestMagnitudeSpectrum(t *testing.T) {
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = math.Cos(2 * math.Pi * 5 * float64(i) / 100)
	}
	freqs, mags := MagnitudeSpectrum(signal, 100)
	require.Len(t, freqs, 51)
	require.Len(t, mags, 51)
	assert.InDelta(t, 5, freqs[5], 1e-12)
	assert.InDelta(t, 0.5, mags[5], 1e-9)
	assert.InDelta(t, 0, mags[10], 1e-9)

	freqs, mags = MagnitudeSpectrum(nil, 100)
	assert.Nil(t, freqs)
	assert.Nil(t, mags)
}
