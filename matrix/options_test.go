// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/workerpool"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, 128, matrix.DefaultMulBlockSize)
	require.Equal(t, 256, matrix.DefaultTransposeBlockSize)
	require.Equal(t, matrix.DefaultMulBlockSize, o.MulBlockSize())
	require.Equal(t, matrix.DefaultTransposeBlockSize, o.TransposeBlockSize())
	require.Equal(t, matrix.DefaultWorkers, o.Workers())
	require.IsType(t, workerpool.Limited{}, matrix.ExecutorOf(o))
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithMulBlockSize(8), matrix.WithMulBlockSize(16))
	require.Equal(t, 16, o.MulBlockSize())
	require.Equal(t, matrix.DefaultTransposeBlockSize, o.TransposeBlockSize())

	o = matrix.NewOptions(matrix.WithTransposeBlockSize(32), matrix.WithWorkers(3))
	require.Equal(t, matrix.DefaultMulBlockSize, o.MulBlockSize())
	require.Equal(t, 32, o.TransposeBlockSize())
	require.Equal(t, 3, o.Workers())
	require.Equal(t, workerpool.Limit(3), matrix.ExecutorOf(o))
}

// TestOptions_Executor covers a shared pool, nil and a typed-nil pool.
func TestOptions_Executor(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	o := matrix.NewOptions(matrix.WithExecutor(pool), matrix.WithWorkers(7))
	require.Same(t, pool, matrix.ExecutorOf(o))

	o = matrix.NewOptions(matrix.WithExecutor(pool), matrix.WithExecutor(nil))
	require.IsType(t, workerpool.Limited{}, matrix.ExecutorOf(o))

	var nilPool *workerpool.Pool
	o = matrix.NewOptions(matrix.WithExecutor(nilPool))
	require.IsType(t, workerpool.Limited{}, matrix.ExecutorOf(o))
}

// TestOptions_Panics pins the stable panic messages for nonsensical values.
func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithMulBlockSize: block size must be > 0",
		func() { matrix.WithMulBlockSize(0) })
	require.PanicsWithValue(t, "matrix: WithTransposeBlockSize: block size must be > 0",
		func() { matrix.WithTransposeBlockSize(-4) })
	require.PanicsWithValue(t, "matrix: WithWorkers: workers must be >= 0",
		func() { matrix.WithWorkers(-1) })
	require.NotPanics(t, func() { matrix.WithWorkers(0) })
}
