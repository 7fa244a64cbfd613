// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels and constructors minimal by delegating nil/shape checks here.
//  - Return sentinels wrapped with the validator tag so call sites can add
//    their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateRectangular is O(rows); every other check is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures rows and cols are non-negative and that rows*cols
// fits in an int. Returns ErrInvalidDimensions otherwise. Zero is a legal extent.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 || (rows > 0 && cols > math.MaxInt/rows) {
		return validatorErrorf(fmt.Sprintf("ValidateDims(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateMulCompatible is a composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateRectangular ensures every row of a nested literal has the same
// length as the first one.
//
// Errors: ErrConstruction, naming the first offending row.
// Complexity: O(rows).
func ValidateRectangular[T Element](rows [][]T) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d columns, want %d", i, len(row), want),
				ErrConstruction,
			)
		}
	}

	return nil
}

// ValidateFlatLen ensures a flat row-major buffer holds exactly rows*cols values.
//
// Errors: ErrInvalidDimensions (negative dims), ErrConstruction (length).
// Complexity: O(1).
func ValidateFlatLen(rows, cols, n int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return validatorErrorf("ValidateFlatLen", err)
	}
	if n != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateFlatLen: %d values for %dx%d", n, rows, cols),
			ErrConstruction,
		)
	}

	return nil
}
