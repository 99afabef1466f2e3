package spectrum

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-osci/waveform"
)

// Errors returned by engine construction and queries.
var (
	ErrLengthMismatch = errors.New("spectrum: time and voltage sequences differ in length")
	ErrTooFewSamples  = errors.New("spectrum: need at least 2 samples")
	ErrZeroSpan       = errors.New("spectrum: time samples span must be positive")
	ErrNotTransformed = errors.New("spectrum: transform has not been computed")
)

// Result is the immutable frequency-domain representation of one waveform.
//
// ComplexFrequencies follows the standard DFT bin layout: bin 0 is DC,
// ascending positive frequencies fill the first half, the mirrored
// negative frequencies the second. RealFrequencies/RealAmplitudes are the
// one-sided view over the first SampleCount/2 bins.
type Result struct {
	SampleCount    int
	SamplingSpan   float64 // max(time) - min(time), seconds
	SamplingPeriod float64 // SamplingSpan / SampleCount

	ComplexFrequencies []float64
	ComplexAmplitudes  []complex128
	RealFrequencies    []float64
	RealAmplitudes     []float64

	MaxFrequency float64
	MinFrequency float64
}

// Engine owns one (time, voltage) sample pair and serves frequency-domain
// queries against its most recent [Engine.Transform] result.
//
// The engine takes ownership of the slices passed to [New]; callers must
// not mutate them afterwards.
type Engine struct {
	time  []float64
	volts []float64
	res   *Result
}

// New creates an engine from a time base and a voltage sequence of equal
// length. At least two samples are required.
func New(timeSamples, voltSamples []float64) (*Engine, error) {
	if len(timeSamples) != len(voltSamples) {
		return nil, ErrLengthMismatch
	}
	if len(timeSamples) < 2 {
		return nil, ErrTooFewSamples
	}
	return &Engine{time: timeSamples, volts: voltSamples}, nil
}

// FromWaveform creates an engine over one channel of a loaded capture.
// Selecting an absent channel fails with [waveform.ErrInvalidChannel].
func FromWaveform(w *waveform.Waveform, ch waveform.Channel) (*Engine, error) {
	volts, err := w.Samples(ch)
	if err != nil {
		return nil, err
	}
	return New(w.Time, volts)
}

// Transform computes the frequency-domain representation of the waveform.
//
// Repeat calls recompute from the stored samples and replace the cached
// result wholesale; previously returned Results remain valid snapshots.
func (e *Engine) Transform() (*Result, error) {
	n := len(e.time)
	span := floats.Max(e.time) - floats.Min(e.time)
	if span <= 0 {
		return nil, ErrZeroSpan
	}
	period := span / float64(n)
	step := 1 / (float64(n) * period)

	freqs := make([]float64, n)
	for i := range freqs {
		if i < (n+1)/2 {
			freqs[i] = float64(i) * step
		} else {
			freqs[i] = float64(i-n) * step
		}
	}

	in := make([]complex128, n)
	for i, v := range e.volts {
		in[i] = complex(v, 0)
	}
	spec, err := forward(in)
	if err != nil {
		return nil, err
	}

	half := n / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range re {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}
	amps := make([]float64, half)
	vecmath.Magnitude(amps, re, im)
	floats.Scale(2/float64(n), amps)
	amps[0] /= 2 // DC has no mirror pair to fold in

	realFreqs := append([]float64(nil), freqs[:half]...)

	res := &Result{
		SampleCount:        n,
		SamplingSpan:       span,
		SamplingPeriod:     period,
		ComplexFrequencies: freqs,
		ComplexAmplitudes:  spec,
		RealFrequencies:    realFreqs,
		RealAmplitudes:     amps,
		MaxFrequency:       floats.Max(realFreqs),
		MinFrequency:       floats.Min(realFreqs),
	}
	e.res = res
	return res, nil
}

// AmplitudeAt returns the one-sided amplitude of the bin whose center
// frequency is nearest to f. Equidistant bins resolve to the lower index.
// No interpolation is performed; a frequency between bin centers yields
// whichever bin is numerically closest. Returns 0 before Transform.
func (e *Engine) AmplitudeAt(f float64) float64 {
	if e.res == nil {
		return 0
	}
	return e.res.RealAmplitudes[nearestIndex(e.res.RealFrequencies, f)]
}

// AmplitudeRange returns a copy of the one-sided amplitudes between the
// bins nearest low and high (half-open). If both bounds resolve to the
// same bin the single amplitude at that bin is returned; reversed bounds
// yield nil. Returns nil before Transform.
func (e *Engine) AmplitudeRange(low, high float64) []float64 {
	if e.res == nil {
		return nil
	}
	lo := nearestIndex(e.res.RealFrequencies, low)
	hi := nearestIndex(e.res.RealFrequencies, high)
	switch {
	case lo == hi:
		return []float64{e.res.RealAmplitudes[lo]}
	case hi < lo:
		return nil
	}
	return append([]float64(nil), e.res.RealAmplitudes[lo:hi]...)
}

// MaxFrequency returns the highest one-sided bin frequency, or 0 before
// Transform.
func (e *Engine) MaxFrequency() float64 {
	if e.res == nil {
		return 0
	}
	return e.res.MaxFrequency
}

// MinFrequency returns the lowest one-sided bin frequency, or 0 before
// Transform.
func (e *Engine) MinFrequency() float64 {
	if e.res == nil {
		return 0
	}
	return e.res.MinFrequency
}

// nearestIndex returns the index minimizing squared distance to f.
// The strict comparison keeps the first index on ties.
func nearestIndex(freqs []float64, f float64) int {
	best := 0
	bestDist := (freqs[0] - f) * (freqs[0] - f)
	for i := 1; i < len(freqs); i++ {
		d := (freqs[i] - f) * (freqs[i] - f)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
