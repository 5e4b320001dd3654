// SPDX-License-Identifier: MIT
// Package: stl/series
//
// csv.go — CSV ingestion for raw series and export for decompositions.
//
// Purpose (single responsibility):
//   • Read (time, value) observations from CSV with a configurable value
//     column, optional time column, layout, header row, and delimiter.
//   • Write a finished decomposition as one row per index with all five
//     per-point columns.
//
// Contract:
//   • Parse failures are wrapped with the 1-based row number and the cell
//     text around the matching sentinel; callers match via errors.Is.
//   • Exported floats use strconv 'g'/-1 formatting, so a read-back
//     ParseFloat reproduces every value bit-for-bit.

package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/stl"
)

// CSVOptions parameterizes ReadCSV and LoadCSV.
type CSVOptions struct {
	// ValueColumn is the zero-based index of the value column.
	ValueColumn int
	// TimeColumn is the zero-based index of the time column; a negative
	// index disables time parsing entirely.
	TimeColumn int
	// TimeLayout is the time.Parse layout applied to TimeColumn cells.
	TimeLayout string
	// HasHeader skips the first row before parsing.
	HasHeader bool
	// Delimiter is the field separator; the zero value means ','.
	Delimiter rune
}

// DefaultCSVOptions returns the conventional single-column layout: value
// in column 0, no time column, RFC 3339 layout, header row present,
// comma-delimited.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		ValueColumn: 0,
		TimeColumn:  -1,
		TimeLayout:  time.RFC3339,
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// ReadCSV parses observations from r. The returned times slice is nil
// when opt.TimeColumn is negative; otherwise it is index-aligned with the
// values.
//
// Complexity: O(rows) time, O(rows) memory.
func ReadCSV(r io.Reader, opt CSVOptions) ([]time.Time, []float64, error) {
	reader := csv.NewReader(r)
	if opt.Delimiter != 0 {
		reader.Comma = opt.Delimiter
	}
	reader.TrimLeadingSpace = true
	// Row widths are checked against the configured columns instead of
	// the first record, so ragged trailing columns stay readable.
	reader.FieldsPerRecord = -1

	var (
		times  []time.Time
		values []float64
		row    int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		row++
		if row == 1 && opt.HasHeader {
			continue
		}

		if opt.ValueColumn < 0 || opt.ValueColumn >= len(record) {
			return nil, nil, fmt.Errorf("row %d: value column %d: %w", row, opt.ValueColumn, ErrCSVField)
		}
		cell := strings.TrimSpace(record[opt.ValueColumn])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %q: %w", row, cell, ErrCSVValue)
		}
		values = append(values, v)

		if opt.TimeColumn >= 0 {
			if opt.TimeColumn >= len(record) {
				return nil, nil, fmt.Errorf("row %d: time column %d: %w", row, opt.TimeColumn, ErrCSVField)
			}
			cell = strings.TrimSpace(record[opt.TimeColumn])
			ts, err := time.Parse(opt.TimeLayout, cell)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %q: %w", row, cell, ErrCSVTime)
			}
			times = append(times, ts)
		}
	}
	if len(values) == 0 {
		return nil, nil, ErrCSVEmpty
	}

	return times, values, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opt CSVOptions) ([]time.Time, []float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return ReadCSV(file, opt)
}

// WriteDecompositionCSV writes res as CSV with the header
// index,data,trend,seasonal,remainder,weight and one row per point.
//
// Complexity: O(n) time.
func WriteDecompositionCSV(w io.Writer, res *stl.Result) error {
	if res == nil {
		return ErrNilResult
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"index", "data", "trend", "seasonal", "remainder", "weight"}); err != nil {
		return err
	}

	record := make([]string, 6)
	for i := range res.Data {
		record[0] = strconv.Itoa(i)
		record[1] = strconv.FormatFloat(res.Data[i], 'g', -1, 64)
		record[2] = strconv.FormatFloat(res.Trend[i], 'g', -1, 64)
		record[3] = strconv.FormatFloat(res.Seasonal[i], 'g', -1, 64)
		record[4] = strconv.FormatFloat(res.Remainder[i], 'g', -1, 64)
		record[5] = strconv.FormatFloat(res.Weights[i], 'g', -1, 64)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
