// Package blockmat is a dense, generic matrix engine whose product and
// transpose run as block-partitioned concurrent work.
//
// Everything is organized under a few subpackages:
//
//	matrix/       Dense[T] storage, bounds-checked accessors, Equal, Mul, Transpose
//	tile/         the tiling plan: disjoint rectangles covering an index space
//	workerpool/   bounded executors (persistent Pool, per-call Limit)
//	render/       framed, right-aligned text rendering of any matrix
//	snapshot/     memory-mapped save/load of matrices for reproducible runs
//	cmd/blockmat  demonstration suite and timing benchmark
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int{{2, 0}, {1, 2}})
//	c, err := matrix.Mul(a, b) // [[4 4] [10 8]]
//
// Every block size and executor yields bit-identical results: tiles
// partition the output, and each cell sums its products in ascending order.
package blockmat
