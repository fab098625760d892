// SPDX-License-Identifier: MIT
// Package: linalg
//
// Transpose addressing: pure functions mapping logical coordinates to
// physical offsets, plus the element accessors built on them.
//
// For a physical r×c buffer:
//   - untransposed: logical (i,j) → i*c + j, logical shape (r, c)
//   - transposed:   logical (i,j) → j*c + i, logical shape (c, r)
//
// Every access recomputes the mapping from the flag; there is no view object
// that could outlive its storage.

package linalg

// logicalShape returns the (rows, cols) seen through the transpose flag.
func logicalShape(r, c int, transposed bool) (int, int) {
	if transposed {
		return c, r
	}

	return r, c
}

// offset maps logical (i,j) to a physical offset in a buffer with physCols
// columns. Callers guarantee the coordinates are in range.
func offset(i, j, physCols int, transposed bool) int {
	if transposed {
		return j*physCols + i
	}

	return i*physCols + j
}

// logicalOf is the inverse of offset: it maps a physical offset back to the
// logical (i,j) it represents. physCols must be > 0.
func logicalOf(off, physCols int, transposed bool) (int, int) {
	pr, pc := off/physCols, off%physCols
	if transposed {
		return pc, pr
	}

	return pr, pc
}

// at reads logical (i,j) without bounds checks.
func (m *Matrix) at(i, j int) float32 { return m.data[offset(i, j, m.c, m.transposed)] }

// Index returns the value at logical (row, col).
//
// Errors:
//   - *IndexOutOfBoundsError (ErrIndexOutOfBounds) naming the offending axis.
//
// Complexity: O(1).
func (m *Matrix) Index(row, col int) (float32, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf("Matrix.Index", err)
	}

	return m.at(row, col), nil
}

// SetIndex stores v at logical (row, col).
//
// Errors:
//   - *IndexOutOfBoundsError (ErrIndexOutOfBounds) naming the offending axis.
//
// Complexity: O(1).
func (m *Matrix) SetIndex(row, col int, v float32) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return matrixErrorf("Matrix.SetIndex", err)
	}
	m.data[offset(row, col, m.c, m.transposed)] = v

	return nil
}

// Flatten materialises the logical view in row-major order.
// MAIN DESCRIPTION:
//   - Read-only projection: neither the flag nor the storage changes.
//
// Implementation:
//   - Untransposed: a single copy of the physical buffer.
//   - Transposed: gather through offset() in logical i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Flatten() []float32 {
	out := make([]float32, len(m.data))
	if !m.transposed {
		copy(out, m.data)
		return out
	}
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			out[base+j] = m.at(i, j)
		}
	}

	return out
}
