// Package harmonics derives normalized harmonic-order content and total
// harmonic distortion from a computed voltage spectrum.
package harmonics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by harmonic queries.
var (
	ErrInvalidFundamental = errors.New("harmonics: fundamental frequency must be positive")
	ErrInvalidOrder       = errors.New("harmonics: max order must be >= 0")
)

// Spectrum is the query surface the analyzer needs from a transformed
// spectrum engine. The analyzer never touches raw bin arrays.
type Spectrum interface {
	// AmplitudeAt returns the one-sided amplitude nearest to f.
	AmplitudeAt(f float64) float64
	// MaxFrequency returns the highest analyzable frequency.
	MaxFrequency() float64
}

// Analyzer answers harmonic-content and THD queries against one spectrum.
type Analyzer struct {
	sp Spectrum
}

// NewAnalyzer creates an analyzer over a transformed spectrum.
func NewAnalyzer(s Spectrum) *Analyzer {
	return &Analyzer{sp: s}
}

// MaxOrderFor returns the largest harmonic order whose frequency stays
// within maxFrequency, i.e. floor(maxFrequency / fundamental).
func MaxOrderFor(fundamental, maxFrequency float64) int {
	return int(math.Floor(maxFrequency / fundamental))
}

// Content returns the harmonic content for orders 0..maxOrder inclusive.
//
// Entry i is the amplitude at i x fundamental, normalized to the amplitude
// at the fundamental and expressed as a percentage; the entry at order 1
// is therefore always 100. When allowOutOfRange is false and
// maxOrder x fundamental exceeds the spectrum's maximum frequency,
// maxOrder is silently clamped to [MaxOrderFor] and a shorter slice is
// returned.
//
// The division by the fundamental's amplitude is unguarded: a
// zero-amplitude fundamental is a degenerate input and yields NaN/Inf
// entries rather than an error. Callers must check for non-finite values
// before using the result further.
func (a *Analyzer) Content(fundamental float64, maxOrder int, allowOutOfRange bool) ([]float64, error) {
	if fundamental <= 0 {
		return nil, ErrInvalidFundamental
	}
	if maxOrder < 0 {
		return nil, ErrInvalidOrder
	}

	if !allowOutOfRange && float64(maxOrder)*fundamental > a.sp.MaxFrequency() {
		maxOrder = MaxOrderFor(fundamental, a.sp.MaxFrequency())
	}

	ref := a.sp.AmplitudeAt(fundamental)
	content := make([]float64, maxOrder+1)
	for order := range content {
		content[order] = a.sp.AmplitudeAt(float64(order)*fundamental) / ref * 100
	}
	return content, nil
}

// THD returns the total harmonic distortion relative to the fundamental,
// in percent: the root-sum-of-squares of the harmonic content from order 2
// up to the highest order the spectrum resolves. DC and the fundamental
// are excluded.
//
// Like [Analyzer.Content], a zero-amplitude fundamental propagates as a
// non-finite result instead of an error.
func (a *Analyzer) THD(fundamental float64) (float64, error) {
	if fundamental <= 0 {
		return 0, ErrInvalidFundamental
	}

	content, err := a.Content(fundamental, MaxOrderFor(fundamental, a.sp.MaxFrequency()), false)
	if err != nil {
		return 0, err
	}
	if len(content) <= 2 {
		return 0, nil
	}
	return floats.Norm(content[2:], 2), nil
}
