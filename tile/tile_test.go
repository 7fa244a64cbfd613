// SPDX-License-Identifier: MIT
// Package tile_test verifies the partitioning invariant of tile plans.
package tile_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmat/tile"
	"github.com/stretchr/testify/require"
)

// coverage counts how many tiles of plan contain each cell of rows×cols.
func coverage(plan []tile.Tile, rows, cols int) []int {
	hits := make([]int, rows*cols)
	for _, t := range plan {
		for i := t.RowStart; i < t.RowEnd; i++ {
			for j := t.ColStart; j < t.ColEnd; j++ {
				hits[i*cols+j]++
			}
		}
	}

	return hits
}

// TestPlanPartitions checks that every cell is covered by exactly one tile.
func TestPlanPartitions(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {3, 5}, {7, 7}, {128, 1}, {129, 257}, {300, 17}}
	blocksz := []int{1, 2, 3, 64, 128, 256, 1000}

	for _, s := range shapes {
		for _, b := range blocksz {
			rows, cols, block := s[0], s[1], b
			t.Run(fmt.Sprintf("%dx%d/b=%d", rows, cols, block), func(t *testing.T) {
				plan, err := tile.Plan(rows, cols, block)
				require.NoError(t, err)
				require.Len(t, plan, tile.Count(rows, cols, block))

				for idx, h := range coverage(plan, rows, cols) {
					require.Equalf(t, 1, h, "cell %d covered %d times", idx, h)
				}
				for _, tl := range plan {
					require.Greater(t, tl.Area(), 0)
					require.LessOrEqual(t, tl.Rows(), block)
					require.LessOrEqual(t, tl.Cols(), block)
				}
			})
		}
	}
}

// TestPlanNoOverlap cross-checks Overlaps against the coverage count.
func TestPlanNoOverlap(t *testing.T) {
	t.Parallel()

	plan, err := tile.Plan(50, 70, 16)
	require.NoError(t, err)
	for a := range plan {
		for b := a + 1; b < len(plan); b++ {
			require.Falsef(t, plan[a].Overlaps(plan[b]), "%v overlaps %v", plan[a], plan[b])
		}
	}
}

// TestPlanOrder pins the row-block-major emission order.
func TestPlanOrder(t *testing.T) {
	t.Parallel()

	plan, err := tile.Plan(3, 5, 2)
	require.NoError(t, err)
	require.Equal(t, []tile.Tile{
		{RowStart: 0, RowEnd: 2, ColStart: 0, ColEnd: 2},
		{RowStart: 0, RowEnd: 2, ColStart: 2, ColEnd: 4},
		{RowStart: 0, RowEnd: 2, ColStart: 4, ColEnd: 5},
		{RowStart: 2, RowEnd: 3, ColStart: 0, ColEnd: 2},
		{RowStart: 2, RowEnd: 3, ColStart: 2, ColEnd: 4},
		{RowStart: 2, RowEnd: 3, ColStart: 4, ColEnd: 5},
	}, plan)
}

// TestPlanDegenerate covers empty index spaces and invalid arguments.
func TestPlanDegenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		block      int
		wantErr    error
	}{
		{"0x0", 0, 0, 128, nil},
		{"0x9", 0, 9, 128, nil},
		{"9x0", 9, 0, 128, nil},
		{"zero block", 4, 4, 0, tile.ErrBadBlockSize},
		{"negative block", 4, 4, -1, tile.ErrBadBlockSize},
		{"negative rows", -1, 4, 2, tile.ErrBadShape},
		{"negative cols", 4, -3, 2, tile.ErrBadShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			plan, err := tile.Plan(tc.rows, tc.cols, tc.block)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, plan)
				require.Zero(t, tile.Count(tc.rows, tc.cols, tc.block))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, plan)
			require.Empty(t, plan)
		})
	}
}

func TestCount(t *testing.T) {
	require.Equal(t, 1, tile.Count(128, 128, 128))
	require.Equal(t, 4, tile.Count(129, 129, 128))
	require.Equal(t, 4, tile.Count(300, 500, 256))
	require.Equal(t, 6, tile.Count(300, 700, 256))
	require.Equal(t, 0, tile.Count(0, 500, 256))
}

func TestTileGeometry(t *testing.T) {
	tl := tile.Tile{RowStart: 2, RowEnd: 5, ColStart: 1, ColEnd: 3}
	require.Equal(t, 3, tl.Rows())
	require.Equal(t, 2, tl.Cols())
	require.Equal(t, 6, tl.Area())
	require.True(t, tl.Contains(2, 1))
	require.True(t, tl.Contains(4, 2))
	require.False(t, tl.Contains(5, 2))
	require.False(t, tl.Contains(3, 3))
	require.Equal(t, "[2:5)x[1:3)", tl.String())
}
