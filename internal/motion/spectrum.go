package motion

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MagnitudeSpectrum returns the one-sided magnitude spectrum of signal
// sampled at sampleRate Hz. Magnitudes are scaled by 1/len(signal).
func MagnitudeSpectrum(signal []float64, sampleRate float64) (freqs, mags []float64) {
	if len(signal) == 0 {
		return nil, nil
	}
	fft := fourier.NewFFT(len(signal))
	coeffs := fft.Coefficients(nil, signal)

	freqs = make([]float64, len(coeffs))
	mags = make([]float64, len(coeffs))
	scale := 1 / float64(len(signal))
	for i, c := range coeffs {
		freqs[i] = fft.Freq(i) * sampleRate
		mags[i] = cmplx.Abs(c) * scale
	}
	return freqs, mags
}
