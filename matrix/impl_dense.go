// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: the backing slice never escapes; every constructor
//     copies its input and every export (ToRows, Flat, Clone) copies its output.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewFromRows/NewFromSlice: O(r*c) copy;
//     At/Set: O(1); Equal/Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and still
// matches the sentinel through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over any Element type.
//   - r,c hold dimensions (rows, cols), both >= 0 and fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense owns its buffer exclusively. Copy with Clone; sharing the pointer
// shares the matrix, exactly like any other Go reference type.
type Dense[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// newDense allocates an r×c zero matrix without validation.
// Callers guarantee r, c >= 0.
func newDense[T Element](r, c int) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: make([]T, r*c)}
}

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - 0×0, 0×n and n×0 are legal and hold an empty buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, denseErrorf("New", rows, cols, err)
	}

	return newDense[T](rows, cols), nil
}

// NewFromRows builds a matrix from a nested literal, one inner slice per row.
// Implementation:
//   - Stage 1: empty input yields a 0×0 matrix.
//   - Stage 2: take cols from the first row; ValidateRectangular rejects any
//     row of different length before anything is allocated.
//   - Stage 3: copy rows into one contiguous buffer.
//
// Behavior highlights:
//   - The input is copied; later edits to rows do not affect the matrix.
//   - A ragged literal never produces a partially built matrix.
//
// Errors:
//   - ErrConstruction (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDense[T](0, 0), nil
	}
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}

	r, c := len(rows), len(rows[0])
	m := newDense[T](r, c)
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFromSlice builds an r×c matrix from a flat row-major slice (copied).
//
// Errors:
//   - ErrInvalidDimensions (negative dims), ErrConstruction (len(data) != r*c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlice[T Element](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateFlatLen(rows, cols, len(data)); err != nil {
		return nil, fmt.Errorf("NewFromSlice: %w", err)
	}
	m := newDense[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Returns the bare sentinel; At/Set wrap it with method and coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Update replaces the value at (row, col) with f(old) in a single bounds check.
// It is the read-modify-write counterpart of the mutable element reference.
func (m *Dense[T]) Update(row, col int, f func(T) T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Update", row, col, err)
	}
	m.data[off] = f(m.data[off])

	return nil
}

// Equal reports whether m and other have the same shape and identical
// elements under ==. There is no tolerance. Two nil matrices are equal.
// A NaN element never equals itself, so a matrix holding NaN is not Equal
// to its own clone.
// Complexity: O(r*c) worst case, stops at the first difference.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func (m *Dense[T]) NotEqual(other *Dense[T]) bool { return !m.Equal(other) }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as a freshly allocated nested slice.
// NewFromRows(m.ToRows()) reproduces m for any m with at least one row.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Flat returns a copy of the row-major buffer.
func (m *Dense[T]) Flat() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String provides a readable row-wise dump for diagnostics, e.g.
// "[1, 2]\n[3, 4]\n". For bordered, aligned output use package render.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
