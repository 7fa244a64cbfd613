// SPDX-License-Identifier: MIT

// Package tile - rectangular partitioning of a row-major index space.
//
// Purpose:
//   - Split an r×c index space into fixed-edge tiles that never overlap and
//     together cover every cell exactly once.
//   - Keep the plan deterministic: tiles are emitted row-block first, then
//     column-block, so tile k always denotes the same region for a given shape.
//
// The partition is the only thing that makes lock-free writes into a shared
// result buffer correct; every kernel in this module relies on it.
//
// Complexity quicksheet:
//   - Count: O(1); Plan: O(number of tiles); Tile methods: O(1).
package tile

import (
	"errors"
	"fmt"
)

var (
	// ErrBadBlockSize is returned when the tile edge length is not positive.
	ErrBadBlockSize = errors.New("tile: block size must be > 0")

	// ErrBadShape is returned when the index space has negative dimensions.
	ErrBadShape = errors.New("tile: dimensions must be >= 0")
)

// Tile is the half-open rectangle [RowStart,RowEnd) × [ColStart,ColEnd).
type Tile struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Rows returns the tile height.
func (t Tile) Rows() int { return t.RowEnd - t.RowStart }

// Cols returns the tile width.
func (t Tile) Cols() int { return t.ColEnd - t.ColStart }

// Area returns the number of cells covered by t.
func (t Tile) Area() int { return t.Rows() * t.Cols() }

// Contains reports whether cell (i, j) lies inside t.
func (t Tile) Contains(i, j int) bool {
	return i >= t.RowStart && i < t.RowEnd && j >= t.ColStart && j < t.ColEnd
}

// Overlaps reports whether t and u share at least one cell.
func (t Tile) Overlaps(u Tile) bool {
	return t.RowStart < u.RowEnd && u.RowStart < t.RowEnd &&
		t.ColStart < u.ColEnd && u.ColStart < t.ColEnd
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return fmt.Sprintf("[%d:%d)x[%d:%d)", t.RowStart, t.RowEnd, t.ColStart, t.ColEnd)
}

// blocks returns ceil(n/block) for n >= 0, block > 0.
func blocks(n, block int) int {
	return (n + block - 1) / block
}

// Count returns the number of tiles Plan(rows, cols, block) would produce:
// ceil(rows/block) * ceil(cols/block). Zero when either dimension is zero.
// Invalid arguments yield 0; Plan reports them as errors.
func Count(rows, cols, block int) int {
	if rows < 0 || cols < 0 || block <= 0 {
		return 0
	}

	return blocks(rows, block) * blocks(cols, block)
}

// Plan partitions the rows×cols index space into tiles of edge block.
// Implementation:
//   - Stage 1: validate block > 0 and rows, cols >= 0.
//   - Stage 2: step rowStart by block over [0,rows) and, for each, colStart by
//     block over [0,cols); clamp the far edges with min().
//
// Behavior highlights:
//   - Edge tiles are truncated, never padded.
//   - A zero-row or zero-column space yields an empty (non-nil) plan.
//
// Errors:
//   - ErrBadBlockSize, ErrBadShape.
//
// Complexity:
//   - Time O(Count), Space O(Count).
func Plan(rows, cols, block int) ([]Tile, error) {
	if block <= 0 {
		return nil, fmt.Errorf("Plan(%d,%d,%d): %w", rows, cols, block, ErrBadBlockSize)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Plan(%d,%d,%d): %w", rows, cols, block, ErrBadShape)
	}

	plan := make([]Tile, 0, Count(rows, cols, block))
	for rowStart := 0; rowStart < rows; rowStart += block {
		rowEnd := min(rowStart+block, rows)
		for colStart := 0; colStart < cols; colStart += block {
			plan = append(plan, Tile{
				RowStart: rowStart,
				RowEnd:   rowEnd,
				ColStart: colStart,
				ColEnd:   min(colStart+block, cols),
			})
		}
	}

	return plan, nil
}
