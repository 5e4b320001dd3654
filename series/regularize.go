// SPDX-License-Identifier: MIT
// Package: stl/series
//
// regularize.go — timestamped observations onto a uniform grid.
//
// Purpose (single responsibility):
//   • Turn (times, values) pairs into the dense, evenly spaced slice the
//     decomposition engine consumes.
//   • Bin observations by a fixed interval anchored at the first timestamp
//     and collapse each bin with a caller-chosen aggregate.
//
// Contract:
//   • Timestamps must be strictly increasing; duplicates are rejected.
//   • Every bin between the first and last observation must receive at
//     least one observation — holes are an error, never filled.
//   • O(n) time over the observations, O(bins) memory for the output.

package series

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate selects how the observations inside one bin collapse into a
// single grid value.
type Aggregate int

const (
	// AggregateMean averages the bin (the default).
	AggregateMean Aggregate = iota
	// AggregateSum totals the bin.
	AggregateSum
	// AggregateMin keeps the smallest observation.
	AggregateMin
	// AggregateMax keeps the largest observation.
	AggregateMax
	// AggregateFirst keeps the earliest observation.
	AggregateFirst
	// AggregateLast keeps the latest observation.
	AggregateLast
)

// String returns the lowercase name of the aggregate.
func (a Aggregate) String() string {
	switch a {
	case AggregateMean:
		return "mean"
	case AggregateSum:
		return "sum"
	case AggregateMin:
		return "min"
	case AggregateMax:
		return "max"
	case AggregateFirst:
		return "first"
	case AggregateLast:
		return "last"
	default:
		return "unknown"
	}
}

// RegularizeOptions parameterizes Regularize.
type RegularizeOptions struct {
	// Interval is the grid step; it must be positive.
	Interval time.Duration
	// Aggregate collapses each bin; the zero value is AggregateMean.
	Aggregate Aggregate
}

// Regularize bins timestamped observations onto a uniform grid of
// opt.Interval anchored at the first timestamp and returns one aggregated
// value per bin.
//
// Stages:
//  1. Validate shapes, the interval, the aggregate, and strict timestamp
//     monotonicity.
//  2. Size the grid from the span between first and last observation.
//  3. Walk the observations once; bins are contiguous runs because the
//     input is time-sorted. An empty run is an error.
//
// Complexity: O(n) time, O(bins) memory.
func Regularize(times []time.Time, values []float64, opt RegularizeOptions) ([]float64, error) {
	// Stage 1 — scalar and shape validation before any allocation.
	if len(times) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(times) == 0 {
		return nil, ErrEmpty
	}
	if opt.Interval <= 0 {
		return nil, ErrInterval
	}
	if opt.Aggregate < AggregateMean || opt.Aggregate > AggregateLast {
		return nil, ErrAggregate
	}
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return nil, fmt.Errorf("index %d: %w", i, ErrNonIncreasing)
		}
	}

	// Stage 2 — grid sizing. Duration division is exact integer math, so
	// bin indices never drift the way float bucketing would.
	anchor := times[0]
	bins := int(times[len(times)-1].Sub(anchor)/opt.Interval) + 1
	out := make([]float64, bins)

	// Predeclare the run cursors reused across bins.
	var (
		start int       // first observation of the current run
		end   int       // one past the last observation of the current run
		sub   []float64 // values of the current run
	)

	// Stage 3 — one pass over time-sorted observations; each bin is the
	// contiguous run of indices mapping to it.
	for b := 0; b < bins; b++ {
		end = start
		for end < len(times) && int(times[end].Sub(anchor)/opt.Interval) == b {
			end++
		}
		if start == end {
			// The first and last bins always hold an observation, so any
			// empty run is an interior hole.
			return nil, fmt.Errorf("bin %d: %w", b, ErrEmptyBin)
		}

		sub = values[start:end]
		switch opt.Aggregate {
		case AggregateMean:
			out[b] = stat.Mean(sub, nil)
		case AggregateSum:
			out[b] = floats.Sum(sub)
		case AggregateMin:
			out[b] = floats.Min(sub)
		case AggregateMax:
			out[b] = floats.Max(sub)
		case AggregateFirst:
			out[b] = sub[0]
		case AggregateLast:
			out[b] = sub[len(sub)-1]
		}
		start = end
	}

	return out, nil
}
