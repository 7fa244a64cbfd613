// SPDX-License-Identifier: MIT
// Package matrix provides the two scheduled operations, Mul and Transpose,
// plus a single-threaded reference product.
//
// Purpose:
//   - Validate operands, allocate a fresh result, build the tiling plan and
//     hand it to the block scheduler (impl_tiles.go).
//   - Never mutate an operand; never return a partially computed result.
//
// Notes:
//   - All functions use the central validators and wrap sentinels with the
//     op* tags below, so errors read "Mul: ValidateMulCompatible: ...".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blockmat/tile"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul          = "Mul"
	opMulReference = "MulReference"
	opTranspose    = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A × B with block-partitioned concurrency.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); ValidateDims on the result
//     shape; resolve options.
//   - Stage 2: allocate a zero-filled a.Rows()×b.Cols() result.
//   - Stage 3: tile.Plan over the RESULT index space with the multiply edge;
//     an empty plan (0 rows or 0 cols) returns the zero-sized result at once.
//   - Stage 4: runTiles dispatches mulTile per tile and joins.
//
// Behavior highlights:
//   - Each result cell is Σ_k a(i,k)*b(k,j) in ascending k, independent of
//     block size and executor: results are bit-identical across tilings.
//   - a.Cols()==0 with a non-empty result gives all zeros (empty sums).
//   - Operands are only read; a and b may be the same matrix.
//
// Inputs:
//   - a: left matrix (r × n); b: right matrix (n × c).
//   - opts: WithMulBlockSize, WithWorkers, WithExecutor.
//
// Returns:
//   - *Dense[T]: new r × c product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no result allocated).
//   - ErrInvalidDimensions when a.Rows()*b.Cols() overflows int.
//   - ErrTileFault when a tile worker fails; the result is discarded.
//
// Complexity:
//   - Time O(r*n*c) spread over ceil(r/B)*ceil(c/B) tiles, Space O(r*c).
func Mul[T Element](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateDims(a.r, b.c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	res := newDense[T](a.r, b.c)
	plan, err := tile.Plan(res.r, res.c, o.mulBlock)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = runTiles(o.executor, plan, func(t tile.Tile) {
		mulTile(a, b, res, t)
	}); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options.
//   - Stage 2: allocate a m.Cols()×m.Rows() result.
//   - Stage 3: tile.Plan over the SOURCE index space with the transpose edge.
//   - Stage 4: runTiles dispatches transposeTile per tile and joins.
//
// Behavior highlights:
//   - Source cell (i,j) maps to the unique result cell (j,i), and each source
//     cell belongs to one tile, so tile outputs never overlap.
//   - 0-row or 0-column sources return the flipped empty shape at once.
//
// Errors:
//   - ErrNilMatrix; ErrTileFault when a tile worker fails.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Element](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	o := gatherOptions(opts...)

	res := newDense[T](m.c, m.r) // dims flipped
	plan, err := tile.Plan(m.r, m.c, o.transposeBlock)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = runTiles(o.executor, plan, func(t tile.Tile) {
		transposeTile(m, res, t)
	}); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return res, nil
}

// MulReference computes A × B on the calling goroutine with one i→j→k triple
// loop and no tiling. It shares Mul's validation and summation order and is
// the oracle the tiled path is tested and benchmarked against.
// Complexity: Time O(r*n*c), Space O(r*c).
func MulReference[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulReference, err)
	}
	if err := ValidateDims(a.r, b.c); err != nil {
		return nil, matrixErrorf(opMulReference, err)
	}

	res := newDense[T](a.r, b.c)
	var i, j, k int
	var sum, zero T
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = zero
			for k = 0; k < a.c; k++ {
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			res.data[i*b.c+j] = sum
		}
	}

	return res, nil
}

// Mul is the method form of Mul(m, other, opts...).
func (m *Dense[T]) Mul(other *Dense[T], opts ...Option) (*Dense[T], error) {
	return Mul(m, other, opts...)
}

// Transpose is the method form of Transpose(m, opts...).
func (m *Dense[T]) Transpose(opts ...Option) (*Dense[T], error) {
	return Transpose(m, opts...)
}
