package spectrum

import "math"

// ReconstructBand recovers a time-domain waveform restricted to the
// frequency band [minFreq, maxFreq].
//
// Every complex bin whose absolute frequency falls outside the band is
// zeroed before the normalized inverse transform. The returned voltages
// are complex; callers wanting a real waveform take the real part. The
// time base is the engine's original time samples.
func (e *Engine) ReconstructBand(minFreq, maxFreq float64) (timeSamples []float64, voltSamples []complex128, err error) {
	if e.res == nil {
		return nil, nil, ErrNotTransformed
	}

	masked := make([]complex128, len(e.res.ComplexAmplitudes))
	for i, f := range e.res.ComplexFrequencies {
		af := math.Abs(f)
		if af >= minFreq && af <= maxFreq {
			masked[i] = e.res.ComplexAmplitudes[i]
		}
	}

	volts, err := inverse(masked)
	if err != nil {
		return nil, nil, err
	}
	return e.time, volts, nil
}
