// Package waveform loads sampled oscilloscope captures from delimited
// text exports and exposes them as time/voltage sample sequences.
//
// A capture holds one time base and one or two voltage channels of equal
// length. Uniform sampling is assumed; only the overall time span is
// inspected, consecutive sample spacing is never validated.
package waveform

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by waveform loading and channel selection.
var (
	ErrNotFound       = errors.New("waveform: source not found")
	ErrDataFormat     = errors.New("waveform: malformed numeric table")
	ErrInvalidChannel = errors.New("waveform: channel not present")
)

// Channel selects one voltage channel of a capture.
type Channel int

// Channel identifiers. Channel2 is only valid for dual-channel captures.
const (
	Channel1 Channel = 1
	Channel2 Channel = 2
)

// Waveform is a sampled voltage capture with a shared time base.
//
// All slices have equal length. A Waveform is immutable once constructed;
// callers must not modify the returned sample slices.
type Waveform struct {
	Time   []float64
	Volts  []float64
	Volts2 []float64 // nil for single-channel captures
}

// Len returns the number of samples.
func (w *Waveform) Len() int {
	return len(w.Time)
}

// HasSecondChannel reports whether a second voltage channel was captured.
func (w *Waveform) HasSecondChannel() bool {
	return w.Volts2 != nil
}

// Span returns max(Time) - min(Time), the sampled time span in seconds.
// Returns 0 for an empty waveform.
func (w *Waveform) Span() float64 {
	if len(w.Time) == 0 {
		return 0
	}
	return floats.Max(w.Time) - floats.Min(w.Time)
}

// Samples returns the voltage sequence of the requested channel.
//
// Selecting Channel2 on a single-channel capture returns
// [ErrInvalidChannel]; callers that do not control the input should check
// [Waveform.HasSecondChannel] first.
func (w *Waveform) Samples(ch Channel) ([]float64, error) {
	switch ch {
	case Channel1:
		return w.Volts, nil
	case Channel2:
		if w.Volts2 == nil {
			return nil, ErrInvalidChannel
		}
		return w.Volts2, nil
	default:
		return nil, ErrInvalidChannel
	}
}
