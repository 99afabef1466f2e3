package testutil

import "math"

// TimeBase returns n sample instants whose overall span is exactly
// n*period, so that span/N sampling-period inference recovers period.
func TimeBase(n int, period float64) []float64 {
	span := period * float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = span * (float64(i) / float64(n-1))
	}
	return out
}

// BinFrequency returns the center frequency of bin k for an n-sample
// waveform with the given sampling period.
func BinFrequency(k, n int, period float64) float64 {
	return float64(k) / (float64(n) * period)
}

// Tone returns n voltage samples of a sine with the given amplitude whose
// energy lands exactly on bin k of the DFT.
func Tone(n, k int, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
	}
	return out
}

// AddTone adds a bin-centered sine of the given amplitude to volts.
func AddTone(volts []float64, k int, amplitude float64) {
	n := len(volts)
	for i := range volts {
		volts[i] += amplitude * math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
	}
}

// DC returns a constant-valued signal.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
