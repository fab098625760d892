// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage, construction and lazy transpose.
//
// Purpose:
//   - Own a flat row-major float32 buffer whose physical shape (r, c) is fixed
//     at construction time.
//   - Represent transposition as a flag: Transpose never moves data, it only
//     changes how logical coordinates resolve to physical offsets
//     (see addressing.go).
//   - Guarantee safety at the public surface: constructors and accessors
//     return errors instead of panicking.
//
// Complexity quicksheet:
//   - New/NewFlat/NewZero/NewOuter: O(r*c); Transpose/Rows/Cols: O(1);
//     Clone/Equal: O(r*c).

package linalg

import "fmt"

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Matrix is a dense float32 matrix with a lazy transpose flag.
//   - data holds r*c values in physical row-major order (offset = i*c + j).
//   - r, c never change after construction.
//   - transposed swaps the logical shape to (c, r) and remaps addressing.
type Matrix struct {
	r, c       int       // physical row and column counts
	data       []float32 // physical row-major storage (len == r*c)
	transposed bool      // logical view is the transpose of the physical one
}

// New builds a matrix from a slice of equally long rows.
// MAIN DESCRIPTION:
//   - Copies rows into a fresh physical buffer in row-major order with the
//     transpose flag cleared.
//
// Implementation:
//   - Stage 1: ValidateRect rejects the first row whose length differs from
//     the first row.
//   - Stage 2: append each row into a buffer of len(rows)*len(rows[0]).
//
// Errors:
//   - *InvalidShapeError (ErrInvalidShape) for ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - An empty input yields a 0×0 matrix; rows of length 0 yield r×0.
func New(rows [][]float32) (*Matrix, error) {
	if err := ValidateRect(rows); err != nil {
		return nil, matrixErrorf("New", err)
	}
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	buf := make([]float32, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Matrix{r: r, c: c, data: buf}, nil
}

// NewFlat builds an rows×cols matrix from row-major data (copied).
//
// Errors:
//   - ErrInvalidDimensions for negative dims.
//   - *InvalidShapeError when len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func NewFlat(data []float32, rows, cols int) (*Matrix, error) {
	if err := ValidateFlat(len(data), rows, cols); err != nil {
		return nil, matrixErrorf("NewFlat", err)
	}
	buf := make([]float32, len(data))
	copy(buf, data)

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// NewZero returns an all-zero rows×cols matrix.
// Errors: ErrInvalidDimensions for negative dims.
func NewZero(rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf("NewZero", err)
	}

	return &Matrix{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewOuter returns the outer product v1 ⊗ v2: a v1.Len()×v2.Len() matrix with
// element (i,j) = v1[i]*v2[j].
// Complexity: O(n*m).
func NewOuter(v1, v2 *Vector) *Matrix {
	r, c := v1.Len(), v2.Len()
	buf := make([]float32, r*c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			buf[base+j] = v1.data[i] * v2.data[j]
		}
	}

	return &Matrix{r: r, c: c, data: buf}
}

// Rows returns the logical row count.
func (m *Matrix) Rows() int {
	r, _ := logicalShape(m.r, m.c, m.transposed)
	return r
}

// Cols returns the logical column count.
func (m *Matrix) Cols() int {
	_, c := logicalShape(m.r, m.c, m.transposed)
	return c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return logicalShape(m.r, m.c, m.transposed) }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// Transpose toggles the transpose flag in O(1); no data is moved.
func (m *Matrix) Transpose() { m.transposed = !m.transposed }

// IsTranspose reports whether the logical view is currently transposed.
func (m *Matrix) IsTranspose() bool { return m.transposed }

// Clone returns an independent deep copy, including the transpose flag.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp, transposed: m.transposed}
}

// Equal reports whether m and o have the same logical shape and equal values
// at every logical position, regardless of how each one is stored.
// Complexity: O(r*c).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	rows, cols := m.Shape()
	if or, oc := o.Shape(); or != rows || oc != cols {
		return false
	}
	// Same orientation means identical physical layout.
	if m.transposed == o.transposed {
		for k := range m.data {
			if m.data[k] != o.data[k] {
				return false
			}
		}

		return true
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.at(i, j) != o.at(i, j) {
				return false
			}
		}
	}

	return true
}
