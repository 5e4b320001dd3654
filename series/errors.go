// SPDX-License-Identifier: MIT
// Package series: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the series
// package. All helpers MUST return these sentinels and tests MUST check them
// via errors.Is. Context (row numbers, bin indices) is added by wrapping with
// fmt.Errorf("...: %w", ErrX) at the failure site.

package series

import "errors"

var (
	// ErrLengthMismatch is returned when the timestamp and value slices
	// disagree in length.
	ErrLengthMismatch = errors.New("series: times and values length mismatch")

	// ErrEmpty is returned when an operation receives no observations.
	ErrEmpty = errors.New("series: empty input")

	// ErrNonIncreasing is returned when timestamps are not strictly
	// increasing (duplicates included).
	ErrNonIncreasing = errors.New("series: timestamps must be strictly increasing")

	// ErrInterval is returned when the regularization interval is zero or
	// negative.
	ErrInterval = errors.New("series: interval must be positive")

	// ErrEmptyBin is returned when a regularization bin between the first
	// and last observation receives no observations. The core engine
	// requires gap-free input, so holes are rejected instead of filled.
	ErrEmptyBin = errors.New("series: empty interior bin")

	// ErrAggregate is returned for an Aggregate value outside the declared
	// enum range.
	ErrAggregate = errors.New("series: unknown aggregate")

	// ErrCSVEmpty is returned when a CSV source yields no data rows.
	ErrCSVEmpty = errors.New("series: csv contains no data rows")

	// ErrCSVField is returned when a configured column index does not
	// exist in a row.
	ErrCSVField = errors.New("series: csv field out of range")

	// ErrCSVValue is returned when a value cell cannot be parsed as a
	// float. The wrap carries the 1-based row number and the cell text.
	ErrCSVValue = errors.New("series: csv value parse failure")

	// ErrCSVTime is returned when a time cell does not match the
	// configured layout. The wrap carries the 1-based row number.
	ErrCSVTime = errors.New("series: csv timestamp parse failure")

	// ErrNilResult is returned when a nil decomposition result is passed
	// to a writer.
	ErrNilResult = errors.New("series: nil result")
)
