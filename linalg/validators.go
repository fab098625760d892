// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single source of truth for shape checks shared by construction
//     and binary operations.
//   - Return typed errors (see errors.go) so call sites only add a method tag.
//
// Determinism & Performance:
//   - All checks are pure and O(1), except ValidateRect which is O(rows).
//
// Note:
//   - Composite validators follow a fixed order: NotNil → Shape.
//   - Every shape check compares LOGICAL dimensions (the transpose flag is
//     honoured through Rows/Cols).

package linalg

// ValidateRect ensures every row of a nested construction input has the length
// of the first row.
//
// Returns *InvalidShapeError{Expected: len(rows[0]), Got: len(rows[i])} for the
// first ragged row i.
// Complexity: O(len(rows)).
func ValidateRect(rows [][]float32) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != want {
			return &InvalidShapeError{Expected: want, Got: len(row)}
		}
	}

	return nil
}

// ValidateFlat ensures a flat buffer holds exactly rows*cols elements.
//
// Errors: ErrInvalidDimensions for negative dims, *InvalidShapeError otherwise.
// Complexity: O(1).
func ValidateFlat(n, rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return err
	}
	if n != rows*cols {
		return &InvalidShapeError{Expected: rows * cols, Got: n}
	}

	return nil
}

// ValidateSameShape ensures a and b share the same logical shape.
//
// Errors: ErrNilOperand, *ShapeMismatchError (expected = a, got = b).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return &ShapeMismatchError{Expected: [2]int{ar, ac}, Got: [2]int{br, bc}}
	}

	return nil
}

// ValidateVecLen ensures v holds exactly n entries.
//
// Errors: ErrNilOperand, *VectorShapeMismatchError.
// Complexity: O(1).
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return ErrNilOperand
	}
	if v.Len() != n {
		return &VectorShapeMismatchError{Expected: n, Got: v.Len()}
	}

	return nil
}

// ValidateSquare ensures m is logically square.
// Errors: ErrNilOperand, ErrSquareRequired.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilOperand
	}
	if !m.IsSquare() {
		return ErrSquareRequired
	}

	return nil
}

// ValidateIndex ensures (row, col) addresses an element of the logical view.
// The row coordinate is checked first.
//
// Errors: ErrNilOperand, *IndexOutOfBoundsError{Axis, Max: bound-1}.
// Complexity: O(1).
func ValidateIndex(m *Matrix, row, col int) error {
	if m == nil {
		return ErrNilOperand
	}
	if err := validateAxis(AxisRow, row, m.Rows()); err != nil {
		return err
	}

	return validateAxis(AxisCol, col, m.Cols())
}

// validateAxis checks 0 <= idx < bound and reports the axis on failure.
func validateAxis(axis Axis, idx, bound int) error {
	if idx < 0 || idx >= bound {
		return &IndexOutOfBoundsError{Axis: axis, Max: bound - 1}
	}

	return nil
}

// validateDims rejects negative dimensions; zero is a legal empty axis.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}
