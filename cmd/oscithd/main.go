// Command oscithd batch-analyzes oscilloscope CSV captures for harmonic
// content relative to a known fundamental frequency.
//
// Usage:
//
//	oscithd -fundamental 49.994 [flags]
//
// For every capture matching -glob it writes a one-sided spectrum table
// and a harmonic-content table into the output directory, and appends the
// THD figure to a shared ledger. Captures that fail to load or parse are
// reported and skipped; the batch continues.
//
// Examples:
//
//	oscithd -fundamental 50
//	oscithd -glob 'scope/*.csv' -fundamental 49.994 -max-order 40 -out results
//	oscithd -fundamental 50 -channel 2
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-osci/harmonics"
	"github.com/cwbudde/algo-osci/report"
	"github.com/cwbudde/algo-osci/spectrum"
	"github.com/cwbudde/algo-osci/waveform"
)

type fileResult struct {
	name     string
	maxOrder int
	thd      float64
}

func main() {
	glob := flag.String("glob", "csv/*.csv", "glob pattern selecting input captures")
	fundamental := flag.Float64("fundamental", 0, "fundamental frequency in Hz (required, > 0)")
	maxOrder := flag.Int("max-order", 20, "highest harmonic order in the content table")
	channel := flag.Int("channel", 1, "voltage channel to analyze (1 or 2)")
	outDir := flag.String("out", "output", "directory for per-capture result tables")
	ledgerName := flag.String("ledger", "thd.csv", "THD ledger filename inside the output directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: oscithd -fundamental <Hz> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes oscilloscope CSV captures for harmonic content and THD.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fundamental <= 0 {
		fmt.Fprintln(os.Stderr, "oscithd: -fundamental must be positive")
		flag.Usage()
		os.Exit(2)
	}
	if *channel != 1 && *channel != 2 {
		fmt.Fprintln(os.Stderr, "oscithd: -channel must be 1 or 2")
		os.Exit(2)
	}

	files, err := filepath.Glob(*glob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oscithd: bad glob %q: %v\n", *glob, err)
		os.Exit(2)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "oscithd: no captures match %q\n", *glob)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "oscithd: create output directory: %v\n", err)
		os.Exit(1)
	}

	ledgerFile, err := os.Create(filepath.Join(*outDir, *ledgerName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "oscithd: create ledger: %v\n", err)
		os.Exit(1)
	}
	defer ledgerFile.Close()
	ledger := report.NewTHDLedger(ledgerFile)

	loader := waveform.NewLoader()
	ch := waveform.Channel(*channel)

	var results []fileResult
	for _, path := range files {
		res, err := analyze(loader, path, ch, *fundamental, *maxOrder, *outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oscithd: skipping %s: %v\n", path, err)
			continue
		}
		if err := ledger.Append(res.name, res.thd); err != nil {
			fmt.Fprintf(os.Stderr, "oscithd: ledger append for %s: %v\n", path, err)
		}
		results = append(results, res)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "oscithd: no captures analyzed")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAPTURE\tMAX ORDER\tTHD[%]")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", r.name, r.maxOrder, r.thd)
	}
	tw.Flush()
}

// analyze runs the full pipeline for one capture and writes its result
// tables next to the ledger.
func analyze(loader *waveform.Loader, path string, ch waveform.Channel, fundamental float64, maxOrder int, outDir string) (fileResult, error) {
	w, err := loader.Load(path)
	if err != nil {
		return fileResult{}, err
	}

	eng, err := spectrum.FromWaveform(w, ch)
	if err != nil {
		return fileResult{}, err
	}
	res, err := eng.Transform()
	if err != nil {
		return fileResult{}, err
	}

	an := harmonics.NewAnalyzer(eng)
	content, err := an.Content(fundamental, maxOrder, false)
	if err != nil {
		return fileResult{}, err
	}
	thd, err := an.THD(fundamental)
	if err != nil {
		return fileResult{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := report.WriteSpectrumFile(filepath.Join(outDir, name+"_spectrum.csv"), res); err != nil {
		return fileResult{}, err
	}
	fundAmp := eng.AmplitudeAt(fundamental)
	if err := report.WriteHarmonicContentFile(filepath.Join(outDir, name+"_harmonics.csv"), content, fundAmp); err != nil {
		return fileResult{}, err
	}

	return fileResult{name: name, maxOrder: len(content) - 1, thd: thd}, nil
}
