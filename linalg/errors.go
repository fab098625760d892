// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set and typed payload errors.
//
// Every fallible operation returns one of the sentinels below, either directly,
// wrapped with method context via fmt.Errorf("Method: %w"), or through a typed
// error whose Unwrap yields the sentinel. Callers match the kind with errors.Is
// and read the payload (expected/got, axis/max) with errors.As.
// No exported function panics on user-supplied input.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned for ragged construction input or a flat
	// buffer whose length does not equal rows*cols. Payload: *InvalidShapeError.
	ErrInvalidShape = errors.New("linalg: invalid shape")

	// ErrShapeMismatch is returned by matrix-matrix operations whose logical
	// shapes differ. Payload: *ShapeMismatchError.
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrVectorShapeMismatch is returned when a vector operand has the wrong
	// length. Payload: *VectorShapeMismatchError.
	ErrVectorShapeMismatch = errors.New("linalg: vector shape mismatch")

	// ErrIndexOutOfBounds is returned by Index/SetIndex/Row/Col on an invalid
	// coordinate. Payload: *IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrSquareRequired signals that a square matrix was required (Det).
	ErrSquareRequired = errors.New("linalg: the matrix has to be a square matrix")

	// ErrLengthMismatch signals a malformed byte buffer in NewBytes.
	ErrLengthMismatch = errors.New("linalg: byte length mismatch")

	// ErrInvalidDimensions is returned for negative dimensions, or for
	// dimensions the byte codec cannot represent exactly.
	ErrInvalidDimensions = errors.New("linalg: invalid dimensions")

	// ErrNilOperand indicates a nil *Matrix or *Vector argument.
	ErrNilOperand = errors.New("linalg: nil operand")
)

// Axis names the coordinate that failed a bounds check.
type Axis int

const (
	// AxisRow identifies the first (row) coordinate.
	AxisRow Axis = iota
	// AxisCol identifies the second (column) coordinate.
	AxisCol
)

// String returns "row" or "col".
func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}

	return "row"
}

// InvalidShapeError carries the expected and observed length of a
// construction input (row length for New, element count for NewFlat).
type InvalidShapeError struct {
	Expected int
	Got      int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("linalg: wrong row shape expected %d, got %d", e.Expected, e.Got)
}

// Unwrap returns ErrInvalidShape.
func (e *InvalidShapeError) Unwrap() error { return ErrInvalidShape }

// ShapeMismatchError carries the logical (rows, cols) of both operands.
type ShapeMismatchError struct {
	Expected [2]int
	Got      [2]int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("linalg: wrong matrix shape expected (%d, %d), got (%d, %d)",
		e.Expected[0], e.Expected[1], e.Got[0], e.Got[1])
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// VectorShapeMismatchError carries the required and observed vector length.
type VectorShapeMismatchError struct {
	Expected int
	Got      int
}

func (e *VectorShapeMismatchError) Error() string {
	return fmt.Sprintf("linalg: wrong vector shape expected %d, got %d", e.Expected, e.Got)
}

// Unwrap returns ErrVectorShapeMismatch.
func (e *VectorShapeMismatchError) Unwrap() error { return ErrVectorShapeMismatch }

// IndexOutOfBoundsError reports the offending axis and its largest valid index.
// Max is -1 when the axis is empty.
type IndexOutOfBoundsError struct {
	Axis Axis
	Max  int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("linalg: index out of bounds max %s %d", e.Axis, e.Max)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexOutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }

// matrixErrorf attaches the method tag to err, preserving the chain for
// errors.Is / errors.As.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
