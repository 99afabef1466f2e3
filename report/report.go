// Package report writes analysis results as comma-separated tables: the
// one-sided spectrum, the harmonic-content breakdown, and an append-only
// THD ledger covering a batch of inputs.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-osci/spectrum"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteSpectrum writes the one-sided spectrum as a two-column table with a
// "frequency[Hz],amplitude[V]" header, one row per bin in ascending
// frequency order.
func WriteSpectrum(w io.Writer, res *spectrum.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frequency[Hz]", "amplitude[V]"}); err != nil {
		return fmt.Errorf("report: write spectrum header: %w", err)
	}
	for i, f := range res.RealFrequencies {
		row := []string{formatFloat(f), formatFloat(res.RealAmplitudes[i])}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write spectrum row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHarmonicContent writes one row per harmonic order with the derived
// voltage (content% x fundamental amplitude / 100) and the percentage
// content, under an "order,voltage[V],content[%]" header.
func WriteHarmonicContent(w io.Writer, content []float64, fundamentalAmplitude float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"order", "voltage[V]", "content[%]"}); err != nil {
		return fmt.Errorf("report: write harmonic header: %w", err)
	}
	for order, pct := range content {
		row := []string{
			strconv.Itoa(order),
			formatFloat(pct * fundamentalAmplitude / 100),
			formatFloat(pct),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write harmonic row %d: %w", order, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// THDLedger appends (identifier, THD[%]) rows to one writer across a
// batch of inputs. The header row is written on the first append.
type THDLedger struct {
	cw        *csv.Writer
	headerOut bool
}

// NewTHDLedger creates a ledger writing to w.
func NewTHDLedger(w io.Writer) *THDLedger {
	return &THDLedger{cw: csv.NewWriter(w)}
}

// Append writes one (identifier, THD[%]) row and flushes it.
func (l *THDLedger) Append(id string, thd float64) error {
	if !l.headerOut {
		if err := l.cw.Write([]string{"filename", "thd[%]"}); err != nil {
			return fmt.Errorf("report: write ledger header: %w", err)
		}
		l.headerOut = true
	}
	if err := l.cw.Write([]string{id, formatFloat(thd)}); err != nil {
		return fmt.Errorf("report: write ledger row for %s: %w", id, err)
	}
	l.cw.Flush()
	return l.cw.Error()
}

// WriteSpectrumFile writes the spectrum table to a file, creating or
// truncating it.
func WriteSpectrumFile(path string, res *spectrum.Result) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteSpectrum(w, res)
	})
}

// WriteHarmonicContentFile writes the harmonic-content table to a file,
// creating or truncating it.
func WriteHarmonicContentFile(path string, content []float64, fundamentalAmplitude float64) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteHarmonicContent(w, content, fundamentalAmplitude)
	})
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}
