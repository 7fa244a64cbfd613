// SPDX-License-Identifier: MIT

// Package matrix - tile kernels and the block scheduler.
//
// Purpose:
//   - mulTile / transposeTile compute one rectangular block each and touch no
//     cell outside it.
//   - runTiles hands every tile of a plan to an Executor and joins them.
//
// Concurrency contract:
//   - Operands are read-only for the whole call; any number of tiles may read
//     them without locks.
//   - The plan partitions the written index space (see package tile), so each
//     result cell is written by exactly one tile, exactly once. No lock, atomic
//     or channel guards the result buffer; the executor's join is the only
//     synchronization point and it publishes every write to the caller.
//
// Determinism:
//   - Within a tile the multiply sum runs in ascending k, so the value of each
//     cell is independent of tile size, plan order and executor.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blockmat/tile"
	"github.com/katalvlaran/blockmat/workerpool"
)

// mulTile writes c(i,j) = Σ_{k=0}^{n-1} a(i,k)*b(k,j) for every (i,j) in t.
// Preconditions (enforced by Mul): a.c == b.r, c is a.r×b.c, t lies in c.
// Complexity: O(t.Area() * a.c).
func mulTile[T Element](a, b, c *Dense[T], t tile.Tile) {
	n, bc := a.c, b.c
	var (
		i, j, k   int
		sum, zero T
		aRow      []T
		cRow      []T
	)
	for i = t.RowStart; i < t.RowEnd; i++ {
		aRow = a.data[i*n : (i+1)*n]
		cRow = c.data[i*bc : (i+1)*bc]
		for j = t.ColStart; j < t.ColEnd; j++ {
			sum = zero
			for k = 0; k < n; k++ { // ascending k: fixed summation order
				sum += aRow[k] * b.data[k*bc+j]
			}
			cRow[j] = sum
		}
	}
}

// transposeTile writes dst(j,i) = src(i,j) for every source cell (i,j) in t.
// Preconditions (enforced by Transpose): dst is src.c×src.r, t lies in src.
// Complexity: O(t.Area()).
func transposeTile[T Element](src, dst *Dense[T], t tile.Tile) {
	rows, cols := src.r, src.c
	var i, j int
	var srcRow []T
	for i = t.RowStart; i < t.RowEnd; i++ {
		srcRow = src.data[i*cols : (i+1)*cols]
		for j = t.ColStart; j < t.ColEnd; j++ {
			dst.data[j*rows+i] = srcRow[j]
		}
	}
}

// runTiles dispatches kernel(plan[i]) for every tile on exec and blocks until
// all of them have returned (the join barrier).
// Implementation:
//   - Stage 1: wrap each tile so a panic becomes an error naming the tile.
//   - Stage 2: exec.Run joins every task before returning.
//   - Stage 3: the first failure, if any, is wrapped with ErrTileFault.
//
// Behavior highlights:
//   - Every tile runs to completion even when another tile failed.
//   - An empty plan returns nil without touching the executor's workers.
//
// Errors:
//   - ErrTileFault wrapping the executor's first error.
//
// Complexity:
//   - O(len(plan)) dispatch overhead plus the kernels' own work.
func runTiles(exec workerpool.Executor, plan []tile.Tile, kernel func(tile.Tile)) error {
	if len(plan) == 0 {
		return nil
	}
	err := exec.Run(len(plan), func(i int) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("tile %d %v: %v", i, plan[i], r)
			}
		}()
		kernel(plan[i])

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTileFault, err)
	}

	return nil
}
