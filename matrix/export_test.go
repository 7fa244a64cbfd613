// SPDX-License-Identifier: MIT
// Package matrix exposes unexported scheduler pieces to the external test package.

package matrix

import (
	"github.com/katalvlaran/blockmat/tile"
	"github.com/katalvlaran/blockmat/workerpool"
)

// RunTiles is runTiles for scheduler tests.
func RunTiles(exec workerpool.Executor, plan []tile.Tile, kernel func(tile.Tile)) error {
	return runTiles(exec, plan, kernel)
}

// ExecutorOf returns the executor gatherOptions resolved.
func ExecutorOf(o Options) workerpool.Executor { return o.executor }
