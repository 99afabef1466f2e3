package waveform

import (
	"errors"
	"testing"
)

func TestSamplesChannelSelection(t *testing.T) {
	w := &Waveform{
		Time:  []float64{0, 1, 2},
		Volts: []float64{1, 2, 3},
	}

	ch1, err := w.Samples(Channel1)
	if err != nil {
		t.Fatalf("Samples(Channel1) failed: %v", err)
	}
	if ch1[2] != 3 {
		t.Fatalf("channel 1 samples mismatch: %v", ch1)
	}

	if _, err := w.Samples(Channel2); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("got %v, want ErrInvalidChannel", err)
	}
	if _, err := w.Samples(Channel(7)); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("got %v, want ErrInvalidChannel for unknown channel", err)
	}
}

func TestSpan(t *testing.T) {
	w := &Waveform{Time: []float64{0.5, 0.1, 0.9}}
	if got := w.Span(); got != 0.8 {
		t.Fatalf("span mismatch: got %v, want 0.8", got)
	}

	empty := &Waveform{}
	if got := empty.Span(); got != 0 {
		t.Fatalf("empty span mismatch: got %v, want 0", got)
	}
}
