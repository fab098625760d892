// SPDX-License-Identifier: MIT

// Package linalg - Vector: a fixed-length, owned sequence of float32 values.
//
// Vector is a value container used as an operand by Matrix operations
// (outer product, dot product, broadcast). Its length never changes after
// construction and it never aliases caller memory.

package linalg

import (
	"strings"

	"github.com/viant/vec/search"
)

// Vector owns a flat ordered sequence of float32 values.
type Vector struct {
	data []float32
}

// NewVector copies data into a new Vector. A nil or empty slice yields an
// empty Vector.
// Complexity: O(n).
func NewVector(data []float32) *Vector {
	cp := make([]float32, len(data))
	copy(cp, data)

	return &Vector{data: cp}
}

// Len returns the number of entries; a nil Vector has none.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns entry i or *IndexOutOfBoundsError{AxisRow, Len()-1}.
func (v *Vector) At(i int) (float32, error) {
	if err := validateAxis(AxisRow, i, v.Len()); err != nil {
		return 0, matrixErrorf("Vector.At", err)
	}

	return v.data[i], nil
}

// Data returns a copy of the entries.
func (v *Vector) Data() []float32 {
	if v == nil {
		return []float32{}
	}
	cp := make([]float32, len(v.data))
	copy(cp, v.data)

	return cp
}

// Equal reports elementwise equality (NaN never equals NaN).
// A nil Vector equals only another nil Vector.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Magnitude returns the Euclidean norm of v.
func (v *Vector) Magnitude() float32 {
	if v.Len() == 0 {
		return 0
	}

	return search.Float32s(v.data).Magnitude()
}

// Distance returns the Euclidean distance between v and o, which must have
// the same length.
//
// Errors: ErrNilOperand, *VectorShapeMismatchError.
func (v *Vector) Distance(o *Vector) (float32, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return 0, matrixErrorf("Vector.Distance", err)
	}
	if v.Len() == 0 {
		return 0, nil
	}

	return search.Float32s(v.data).EuclideanDistance(o.data), nil
}

// String renders the vector as "[v0, v1, ...]".
func (v *Vector) String() string {
	var b strings.Builder
	if v == nil {
		writeRow(&b, nil)
		return b.String()
	}
	writeRow(&b, v.data)

	return b.String()
}
