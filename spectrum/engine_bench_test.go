package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-osci/internal/testutil"
)

func benchEngine(b *testing.B, n int) *Engine {
	b.Helper()
	period := 1.0 / float64(n)
	volts := testutil.Tone(n, 5, 1.0)
	testutil.AddTone(volts, 15, 0.1)
	eng, err := New(testutil.TimeBase(n, period), volts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return eng
}

func BenchmarkTransformPowerOfTwo(b *testing.B) {
	eng := benchEngine(b, 4096)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Transform(); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

func BenchmarkTransformArbitraryLength(b *testing.B) {
	eng := benchEngine(b, 5000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Transform(); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

func BenchmarkAmplitudeAt(b *testing.B) {
	eng := benchEngine(b, 4096)
	if _, err := eng.Transform(); err != nil {
		b.Fatalf("Transform failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.AmplitudeAt(float64(i % 2048))
	}
}
