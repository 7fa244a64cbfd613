// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels and properties.
//   - Keep random data integer-valued so float products stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
)

// MustFromRows builds a matrix from a nested literal or fails the test.
func MustFromRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T matrix.Element](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomInts returns an r×c matrix with entries in [-span, span], seeded.
func RandomInts(t testing.TB, rng *rand.Rand, r, c int, span int64) *matrix.Dense[int64] {
	t.Helper()
	data := make([]int64, r*c)
	for i := range data {
		data[i] = rng.Int63n(2*span+1) - span
	}
	m, err := matrix.NewFromSlice(r, c, data)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomFloats returns an r×c float64 matrix with small integer-valued
// entries, so every partial sum is exactly representable.
func RandomFloats(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense[float64] {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}
	m, err := matrix.NewFromSlice(r, c, data)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// naiveTranspose is an independent oracle for Transpose built on At/Set.
func naiveTranspose[T matrix.Element](t testing.TB, m *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	out := MustDense[T](t, m.Cols(), m.Rows())
	m.Do(func(i, j int, v T) bool {
		if err := out.Set(j, i, v); err != nil {
			t.Fatalf("Set(%d,%d): %v", j, i, err)
		}
		return true
	})

	return out
}
