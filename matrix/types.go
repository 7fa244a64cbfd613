// SPDX-License-Identifier: MIT

// Package matrix: element constraint.
// This file intentionally contains ONLY the type-set every Dense element must
// belong to. Storage lives in impl_dense.go, kernels in impl_tiles.go.
package matrix

// Integer is the set of built-in integer kinds (and named types over them).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Element is every type a Dense can hold: it supports +, * and ==, and its
// zero value is the additive identity used to seed each product sum.
//
// Equality is exact (==). For floats this means NaN != NaN, so a matrix that
// holds NaN is not Equal to itself; integer element types have no such caveat.
type Element interface {
	Integer | Float | Complex
}
