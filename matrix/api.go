// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change tiling, summation order or error policy of the kernels.

package matrix

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// n == 0 yields the 0×0 matrix, the identity for 0-column operands.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = T(1)
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.r, m.c)
}

// IdentityLike returns the identity that leaves m unchanged on the right:
// m × IdentityLike(m) == m. Its size is m.Cols().
func IdentityLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.c)
}

// Product is an alias for Mul: matrix product a × b.
func Product[T Element](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return Mul(a, b, opts...)
}

// T is an alias for Transpose: returns mᵀ.
func T[E Element](m *Dense[E], opts ...Option) (*Dense[E], error) { return Transpose(m, opts...) }
