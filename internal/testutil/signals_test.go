package testutil

import (
	"math"
	"testing"
)

func TestTimeBaseSpan(t *testing.T) {
	const n = 16
	const period = 0.125

	tb := TimeBase(n, period)
	if len(tb) != n {
		t.Fatalf("length mismatch: got %d, want %d", len(tb), n)
	}
	if tb[0] != 0 {
		t.Fatalf("time base must start at 0, got %v", tb[0])
	}
	if got, want := tb[n-1]-tb[0], period*float64(n); got != want {
		t.Fatalf("span mismatch: got %v, want %v", got, want)
	}
}

func TestToneLandsOnBin(t *testing.T) {
	const n = 8
	tone := Tone(n, 2, 1.0)
	// One full cycle every n/k samples; sample 1 sits on the crest.
	if math.Abs(tone[1]-1.0) > 1e-12 {
		t.Fatalf("crest mismatch: got %v, want 1", tone[1])
	}
	if math.Abs(tone[0]) > 1e-12 {
		t.Fatalf("tone must start at 0, got %v", tone[0])
	}
}

func TestAddTone(t *testing.T) {
	base := DC(1.0, 8)
	AddTone(base, 2, 0.5)
	if math.Abs(base[1]-1.5) > 1e-12 {
		t.Fatalf("superposition mismatch: got %v, want 1.5", base[1])
	}
}
