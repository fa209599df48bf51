// Package analysis inspects the synthesized clip offline; nothing here runs
// during the show.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum zero-pads the signal to the next power of two and returns
// the magnitude of the positive-frequency half.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	n := 1
	for n < len(data) {
		n <<= 1
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the bin with the highest magnitude, skipping DC,
// converted to Hz. fftSize is the padded length the spectrum was taken over.
func DominantFrequency(ps []float64, sampleRate, fftSize int) float64 {
	if len(ps) < 2 || fftSize <= 0 {
		return 0
	}
	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	return float64(maxIdx) * float64(sampleRate) / float64(fftSize)
}

// Envelope folds the absolute signal into bins for terminal plotting.
func Envelope(data []float64, bins int) []float64 {
	if len(data) == 0 || bins <= 0 {
		return nil
	}
	if bins > len(data) {
		bins = len(data)
	}
	out := make([]float64, bins)
	per := len(data) / bins
	for i := 0; i < bins; i++ {
		peak := 0.0
		for j := i * per; j < (i+1)*per && j < len(data); j++ {
			v := data[j]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		out[i] = peak
	}
	return out
}
