package harmonics_test

import (
	"fmt"

	"github.com/cwbudde/algo-osci/harmonics"
	"github.com/cwbudde/algo-osci/internal/testutil"
	"github.com/cwbudde/algo-osci/spectrum"
)

func ExampleAnalyzer_THD() {
	const n = 64
	period := 1.0 / 64 // bin step of 1 Hz

	// 4 Hz fundamental with a 10% third harmonic at 12 Hz.
	volts := testutil.Tone(n, 4, 1.0)
	testutil.AddTone(volts, 12, 0.1)

	eng, err := spectrum.New(testutil.TimeBase(n, period), volts)
	if err != nil {
		panic(err)
	}
	if _, err := eng.Transform(); err != nil {
		panic(err)
	}

	thd, err := harmonics.NewAnalyzer(eng).THD(4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("THD: %.2f%%\n", thd)
	// Output:
	// THD: 10.00%
}
