package loess

import "errors"

var (
	// ErrNoData indicates the input series is empty.
	ErrNoData = errors.New("loess: data must be non-empty")

	// ErrWidth indicates a non-positive smoothing width.
	ErrWidth = errors.New("loess: width must be positive")

	// ErrDegree indicates a degree outside {Flat, Linear, Quadratic}.
	ErrDegree = errors.New("loess: degree must be Flat, Linear or Quadratic")

	// ErrJump indicates a non-positive evaluation stride.
	ErrJump = errors.New("loess: jump must be at least 1")

	// ErrWeightsLength indicates external weights whose length differs
	// from the data length.
	ErrWeightsLength = errors.New("loess: external weights must match data length")
)
