package waveform

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const defaultHeaderLines = 2

// LoaderOption mutates a Loader configuration.
type LoaderOption func(*Loader)

// WithComma sets the column delimiter. The default is ','.
func WithComma(comma rune) LoaderOption {
	return func(l *Loader) {
		l.comma = comma
	}
}

// WithHeaderLines sets how many leading metadata rows are skipped before
// the numeric table starts. The default is 2, matching common oscilloscope
// CSV exports.
func WithHeaderLines(n int) LoaderOption {
	return func(l *Loader) {
		if n >= 0 {
			l.headerLines = n
		}
	}
}

// Loader parses delimited oscilloscope exports into [Waveform] values.
//
// A Loader holds only configuration and may be reused across sources;
// every Load builds a fresh Waveform that shares no state with earlier
// results.
type Loader struct {
	comma       rune
	headerLines int
}

// NewLoader creates a Loader with the given options applied to defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		comma:       ',',
		headerLines: defaultHeaderLines,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load reads a capture from a file on disk.
//
// A missing file is reported as [ErrNotFound]; any parse problem in the
// numeric table is reported as [ErrDataFormat].
func (l *Loader) Load(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("waveform: open %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("waveform: open %s: %w", path, err)
	}
	defer f.Close()

	w, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("waveform: %s: %w", path, err)
	}
	return w, nil
}

// LoadReader reads a capture from r.
//
// After the configured header rows, every row must contain the same number
// of numeric columns: two columns are interpreted as (time, voltage),
// three as (time, voltage ch1, voltage ch2). Any other width, a ragged
// row, or a non-numeric cell fails with [ErrDataFormat].
func (l *Loader) LoadReader(r io.Reader) (*Waveform, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	if len(records) <= l.headerLines {
		return nil, fmt.Errorf("%w: no data rows after %d header lines", ErrDataFormat, l.headerLines)
	}
	records = records[l.headerLines:]

	cols := len(records[0])
	if cols != 2 && cols != 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 columns, got %d", ErrDataFormat, cols)
	}

	table := make([][]float64, cols)
	for c := range table {
		table[c] = make([]float64, len(records))
	}
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDataFormat, i+l.headerLines+1, len(rec), cols)
		}
		for c, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not numeric", ErrDataFormat, i+l.headerLines+1, c+1, cell)
			}
			table[c][i] = v
		}
	}

	w := &Waveform{
		Time:  table[0],
		Volts: table[1],
	}
	if cols == 3 {
		w.Volts2 = table[2]
	}
	return w, nil
}
