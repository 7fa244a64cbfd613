// Package matrix is a dense, generic, row-major matrix engine whose product
// and transpose run as block-partitioned concurrent work.
//
// The matrix package provides:
//
//   - Dense[T], a contiguous row-major buffer over any built-in numeric
//     element type, with bounds-checked At/Set and exact Equal.
//   - Mul and Transpose, which split the written index space into fixed-edge
//     tiles (package tile), compute every tile on a bounded executor (package
//     workerpool) and join before returning a freshly allocated result.
//   - MulReference, the single-threaded oracle used by tests and benchmarks.
//
// Tiles partition the result, so no lock or atomic guards the output buffer,
// and each product cell sums in ascending k, so every block size and executor
// gives bit-identical results.
//
// Errors are sentinels (ErrConstruction, ErrDimensionMismatch,
// ErrIndexOutOfBounds, ...) matched with errors.Is. Configuration uses
// functional options (WithMulBlockSize, WithWorkers, WithExecutor, ...).
//
// See the examples in this package for usage patterns.
package matrix
