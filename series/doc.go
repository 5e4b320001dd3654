// Package series provides the input and output collaborators around the
// decomposition engine: regularization of timestamped observations onto
// the dense grid the engine requires, CSV ingestion and export, and a
// deterministic seasonal fixture generator for tests, demos and
// benchmarks.
//
// The package offers the following key components:
//
//   - Regularization:
//     – Regularize:          bins (times, values) onto a uniform grid.
//     – RegularizeOptions:   interval plus per-bin Aggregate choice.
//     – Aggregate:           Mean, Sum, Min, Max, First, Last.
//   - CSV:
//     – ReadCSV / LoadCSV:   configurable value/time columns, layout,
//     header handling, delimiter.
//     – WriteDecompositionCSV: index,data,trend,seasonal,remainder,weight
//     rows with round-trip-exact float formatting.
//   - Fixtures:
//     – BuildSeasonal:       deterministic sinusoid + trend + noise +
//     outliers, reproducible per seed.
//
// Guarantees:
//
//   - Sentinel errors for every rejection, matched via errors.Is; context
//     such as row numbers and bin indices arrives through %w wrapping.
//   - The regularizer rejects interior holes instead of filling them: the
//     engine consumes gap-free series only.
//   - Strict determinism in BuildSeasonal per (n, period, seed, options).
//
// See individual function documentation for detailed contracts and
// performance notes.
package series
