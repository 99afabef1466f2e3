package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// algo-fft plans want power-of-two sizes; oscilloscope captures come in
// arbitrary lengths, so every other size goes through go-dsp's any-size
// FFT. Both backends share the DFT sign convention and a normalized
// inverse, matching the standard forward-DFT bin layout.

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func forward(in []complex128) ([]complex128, error) {
	n := len(in)
	if !isPowerOfTwo(n) {
		return fft.FFT(in), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out, nil
}

func inverse(in []complex128) ([]complex128, error) {
	n := len(in)
	if !isPowerOfTwo(n) {
		return fft.IFFT(in), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}
	return out, nil
}
