// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/workerpool"
)

// ExampleMul multiplies two small integer matrices.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]int{{2, 0}, {1, 2}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)

	// Output:
	// [4, 4]
	// [10, 8]
}

// ExampleMul_dimensionMismatch shows the error for incompatible operands.
func ExampleMul_dimensionMismatch() {
	a, _ := matrix.NewDense[float64](2, 3)
	b, _ := matrix.NewDense[float64](2, 3)

	_, err := matrix.Mul(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	fmt.Println(err)

	// Output:
	// true
	// Mul: ValidateMulCompatible: 2x3 * 2x3: matrix: dimension mismatch
}

// ExampleTranspose flips a 2×3 matrix.
func ExampleTranspose() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, _ := matrix.Transpose(m)
	fmt.Print(mt)

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleWithExecutor reuses one persistent pool across calls.
func ExampleWithExecutor() {
	pool := workerpool.New(4)
	defer pool.Close()

	row, _ := matrix.NewFromRows([][]int64{{1, 2, 3}})
	col, _ := matrix.Transpose(row, matrix.WithExecutor(pool))

	dot, _ := matrix.Mul(row, col, matrix.WithExecutor(pool), matrix.WithMulBlockSize(1))
	v, _ := dot.At(0, 0)
	fmt.Println(v)

	// Output:
	// 14
}

// ExampleDense_At shows bounds-checked access.
func ExampleDense_At() {
	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})

	v, _ := m.At(1, 0)
	fmt.Println(v)

	_, err := m.At(2, 0)
	fmt.Println(errors.Is(err, matrix.ErrIndexOutOfBounds))

	// Output:
	// 3
	// true
}
