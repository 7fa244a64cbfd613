// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for invalid Option
// values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Call sites add context with matrixErrorf / denseErrorf /
// validatorErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> tile fault.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative or that rows*cols does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrConstruction indicates a malformed construction input: a ragged nested
	// literal (rows of different length) or a flat slice whose length is not
	// rows*cols. No partially built matrix is ever returned with it.
	ErrConstruction = errors.New("matrix: malformed construction input")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTileFault indicates that a tile worker failed or panicked while
	// computing its block. The partially written result is discarded.
	ErrTileFault = errors.New("matrix: tile worker fault")
)
