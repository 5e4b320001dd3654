// Package stl decomposes evenly spaced time series into trend, seasonal,
// and remainder components with Seasonal-Trend decomposition using Loess.
//
// 🚀 What is STL?
//
//	STL models a series as trend + seasonal + remainder and estimates
//	the parts with iterated local regression instead of a parametric
//	seasonal shape.  That makes it a workhorse for:
//	  • Seasonal adjustment before forecasting
//	  • Anomaly detection on the deseasonalized remainder
//	  • Trend extraction for monitoring dashboards
//	  • Exploring cycle drift across years of data
//
// ✨ Key features:
//   - tunable Loess width/degree/jump per pass (seasonal, trend, low-pass)
//   - robust mode: bisquare outlier down-weighting over outer cycles
//   - Periodic mode for exactly repeating seasonal patterns
//   - FlatTrend / LinearTrend shortcuts for constrained trends
//   - parallel window evaluation across CPUs, bit-identical to serial
//   - exact subtraction identity: Remainder == Data − Trend − Seasonal
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stl"
//
//	cfg := stl.DefaultConfig(12)  // monthly cycle, seasonal width 7
//	cfg.Robust = true             // bisquare outlier down-weighting
//
//	res, err := stl.Decompose(series, cfg)
//	if err != nil {
//	  // handle configuration/shape errors
//	}
//	fmt.Println(res.Trend, res.Seasonal, res.Remainder)
//
// Performance:
//
//   - Time:   O(inner·(outer+1)·n·width) in the typical regime
//   - Memory: O(n) working set beyond the returned components
//
// Under the hood, the machinery is organized in two subpackages:
//
//	loess/  — the sliding local-regression smoother, reusable standalone
//	series/ — timestamped-input regularization, CSV I/O, synthetic fixtures
//
// See example_test.go for runnable scenarios and cmd/stl for a CSV
// command-line front end.
package stl
