// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/blockmat/matrix"
)

const (
	groupEdge      = "Matrix Edge Cases"
	groupMul       = "Matrix Multiplication"
	groupTranspose = "Matrix Transposition"
)

// Scenarios returns the full demonstration suite in presentation order.
// opts are forwarded to every Mul and Transpose call.
func Scenarios(opts ...matrix.Option) []Scenario {
	return []Scenario{
		{groupEdge, "Empty Matrix Test", "Demonstrate that 0x0 matrices multiply and transpose",
			func(r *Report) error { return empty(r, opts) }},
		{groupEdge, "Ragged Construction Test", "Demonstrate that ragged literals are rejected",
			ragged},
		{groupEdge, "Invalid Multiplication Test", "Demonstrate that (2x3 * 2x3) is a dimension mismatch",
			func(r *Report) error { return mismatch(r, opts) }},
		{groupEdge, "Out Of Bounds Test", "Demonstrate that At/Set reject indices outside the shape",
			outOfBounds},

		{groupMul, "Identity Matrix Test", "Demonstrate that (M * I) = M",
			func(r *Report) error { return identity(r, opts) }},
		{groupMul, "Zero Matrix Test", "Demonstrate that (M * Z) = Z",
			func(r *Report) error { return zero(r, opts) }},
		{groupMul, "Rectangular Matrix Test", "Demonstrate that (A * B) = Expected Result",
			func(r *Report) error { return rowByColumn(r, opts) }},
		{groupMul, "Symmetric Result Test", "Demonstrate that XY != YX",
			func(r *Report) error { return nonCommutative(r, opts) }},
		{groupMul, "Known Result Test", "Demonstrate that Matrix Result = Known Result",
			func(r *Report) error { return knownResult(r, opts) }},
		{groupMul, "Tiled Product Test", "Demonstrate that tiled (A * B) = reference (A * B)",
			func(r *Report) error { return tiledVsReference(r, opts) }},

		{groupTranspose, "Square Matrix Test", "Demonstrate that M^T = E^T",
			func(r *Report) error { return squareTranspose(r, opts) }},
		{groupTranspose, "Rectangular Matrix Test", "Demonstrate that M^T = E^T",
			func(r *Report) error { return rectTranspose(r, opts) }},
		{groupTranspose, "Involution Test", "Demonstrate that (M^T)^T = M",
			func(r *Report) error { return involution(r, opts) }},
	}
}

func empty(r *Report, opts []matrix.Option) error {
	e, err := matrix.NewDense[int](0, 0)
	if err != nil {
		return err
	}
	p, err := matrix.Mul(e, e, opts...)
	if err != nil {
		return err
	}
	r.Check(p.Rows() == 0 && p.Cols() == 0, "0x0 * 0x0 is 0x0")

	tall, err := matrix.NewDense[int](3, 0)
	if err != nil {
		return err
	}
	wide, err := matrix.NewDense[int](0, 2)
	if err != nil {
		return err
	}
	zeros, err := matrix.Mul(tall, wide, opts...)
	if err != nil {
		return err
	}
	want, err := matrix.NewZeros[int](3, 2)
	if err != nil {
		return err
	}
	Expect(r, "Matrix (3x0 * 0x2)", zeros, want)

	et, err := matrix.Transpose(e, opts...)
	if err != nil {
		return err
	}
	r.Check(et.Equal(e), "0x0 transposes to 0x0")

	return nil
}

func ragged(r *Report) error {
	_, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5}})
	r.ExpectError("{{1, 2, 3}, {4, 5}} is rejected", err, matrix.ErrConstruction)

	return nil
}

func mismatch(r *Report, opts []matrix.Option) error {
	a, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	Show(r, "Matrix A", a)
	_, err = matrix.Mul(a, a, opts...)
	r.ExpectError("A * A is rejected", err, matrix.ErrDimensionMismatch)

	return nil
}

func outOfBounds(r *Report) error {
	m, err := matrix.NewDense[int](2, 2)
	if err != nil {
		return err
	}
	_, err = m.At(2, 0)
	r.ExpectError("At(2,0) on 2x2", err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, -1, 1)
	r.ExpectError("Set(0,-1) on 2x2", err, matrix.ErrIndexOutOfBounds)

	return nil
}

func identity(r *Report, opts []matrix.Option) error {
	m, err := matrix.NewFromRows([][]int{{2, 3}, {4, 5}})
	if err != nil {
		return err
	}
	I, err := matrix.IdentityLike(m)
	if err != nil {
		return err
	}
	Show(r, "Matrix M", m)
	Show(r, "Identity Matrix I", I)

	mi, err := matrix.Mul(m, I, opts...)
	if err != nil {
		return err
	}
	Expect(r, "Matrix MI", mi, m)

	return nil
}

func zero(r *Report, opts []matrix.Option) error {
	m, err := matrix.NewFromRows([][]int{{2, 3}, {4, 5}})
	if err != nil {
		return err
	}
	z, err := matrix.ZerosLike(m)
	if err != nil {
		return err
	}
	Show(r, "Matrix M", m)
	Show(r, "Matrix Zero (Z)", z)

	mz, err := matrix.Mul(m, z, opts...)
	if err != nil {
		return err
	}
	Expect(r, "Matrix MZ (M * Zero)", mz, z)

	return nil
}

func rowByColumn(r *Report, opts []matrix.Option) error {
	return expectProduct(r, opts,
		[][]int{{1, 2, 3}},
		[][]int{{1}, {2}, {3}},
		[][]int{{14}},
		"Matrix Result (A * B)")
}

func knownResult(r *Report, opts []matrix.Option) error {
	return expectProduct(r, opts,
		[][]int{{1, 2}, {3, 4}},
		[][]int{{2, 0}, {1, 2}},
		[][]int{{4, 4}, {10, 8}},
		"Matrix Result (KnownA * KnownB)")
}

func expectProduct(r *Report, opts []matrix.Option, a, b, want [][]int, label string) error {
	A, err := matrix.NewFromRows(a)
	if err != nil {
		return err
	}
	B, err := matrix.NewFromRows(b)
	if err != nil {
		return err
	}
	W, err := matrix.NewFromRows(want)
	if err != nil {
		return err
	}
	Show(r, "Matrix A", A)
	Show(r, "Matrix B", B)
	Show(r, "Expected Result (A * B)", W)

	got, err := matrix.Mul(A, B, opts...)
	if err != nil {
		return err
	}
	Expect(r, label, got, W)

	return nil
}

func nonCommutative(r *Report, opts []matrix.Option) error {
	x, err := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	y, err := matrix.NewFromRows([][]int{{2, 0}, {1, 2}})
	if err != nil {
		return err
	}
	Show(r, "Matrix X", x)
	Show(r, "Matrix Y", y)

	xy, err := matrix.Mul(x, y, opts...)
	if err != nil {
		return err
	}
	yx, err := matrix.Mul(y, x, opts...)
	if err != nil {
		return err
	}
	r.Check(xy.NotEqual(yx), "XY != YX")
	Show(r, "Matrix XY (X * Y)", xy)
	Show(r, "Matrix YX (Y * X)", yx)

	return nil
}

// tiledVsReference multiplies operands larger than one tile and compares the
// scheduled product with the single-threaded one.
func tiledVsReference(r *Report, opts []matrix.Option) error {
	const rows, inner, cols = 300, 170, 260
	rng := rand.New(rand.NewSource(42))
	a, err := randomInts(rng, rows, inner)
	if err != nil {
		return err
	}
	b, err := randomInts(rng, inner, cols)
	if err != nil {
		return err
	}

	got, err := matrix.Mul(a, b, opts...)
	if err != nil {
		return err
	}
	want, err := matrix.MulReference(a, b)
	if err != nil {
		return err
	}
	o := matrix.NewOptions(opts...)
	r.Check(got.Equal(want), fmt.Sprintf("%dx%d * %dx%d with block %d matches the reference",
		rows, inner, inner, cols, o.MulBlockSize()))

	return nil
}

func squareTranspose(r *Report, opts []matrix.Option) error {
	return expectTranspose(r, opts, [][]int{{1, 2}, {3, 4}}, [][]int{{1, 3}, {2, 4}})
}

func rectTranspose(r *Report, opts []matrix.Option) error {
	return expectTranspose(r, opts, [][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{1, 4}, {2, 5}, {3, 6}})
}

func expectTranspose(r *Report, opts []matrix.Option, m, want [][]int) error {
	M, err := matrix.NewFromRows(m)
	if err != nil {
		return err
	}
	E, err := matrix.NewFromRows(want)
	if err != nil {
		return err
	}
	Show(r, "Matrix M", M)
	Show(r, "Matrix E^T", E)

	got, err := matrix.Transpose(M, opts...)
	if err != nil {
		return err
	}
	Expect(r, "Matrix M^T", got, E)

	return nil
}

func involution(r *Report, opts []matrix.Option) error {
	rng := rand.New(rand.NewSource(7))
	m, err := randomInts(rng, 301, 517)
	if err != nil {
		return err
	}
	mt, err := matrix.Transpose(m, opts...)
	if err != nil {
		return err
	}
	mtt, err := matrix.Transpose(mt, opts...)
	if err != nil {
		return err
	}
	r.Check(mtt.Equal(m), "301x517 survives a double transpose")

	return nil
}

// randomInts returns a rows×cols matrix of small seeded integers.
func randomInts(rng *rand.Rand, rows, cols int) (*matrix.Dense[int64], error) {
	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = rng.Int63n(19) - 9
	}

	return matrix.NewFromSlice(rows, cols, data)
}
