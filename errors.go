package stl

import "errors"

var (
	// ErrPeriodicity indicates the configured periodicity cannot describe a cycle.
	ErrPeriodicity = errors.New("stl: periodicity must be at least 2")
	// ErrDataLength indicates the series is too short for the configured periodicity.
	ErrDataLength = errors.New("stl: data length must exceed twice the periodicity")
	// ErrSeasonalWidth indicates the required seasonal width was not provided.
	ErrSeasonalWidth = errors.New("stl: seasonal width must be set unless Periodic is enabled")
	// ErrDegree indicates a degree outside flat/linear/quadratic.
	ErrDegree = errors.New("stl: degree must be flat, linear, or quadratic")
	// ErrNegativeSetting indicates a width, jump, iteration count, or worker count below zero.
	ErrNegativeSetting = errors.New("stl: widths, jumps, iteration counts, and workers must be non-negative")
	// ErrTrendFlags indicates both trend-forcing flags were enabled at once.
	ErrTrendFlags = errors.New("stl: FlatTrend and LinearTrend are mutually exclusive")
	// ErrPeriodicConflict indicates Periodic combined with an explicit seasonal setting it would override.
	ErrPeriodicConflict = errors.New("stl: Periodic conflicts with an explicit seasonal width or degree")
	// ErrTrendConflict indicates a trend-forcing flag combined with an explicit trend setting it would override.
	ErrTrendConflict = errors.New("stl: FlatTrend/LinearTrend conflict with an explicit trend width or degree")
)
