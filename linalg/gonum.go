// SPDX-License-Identifier: MIT
// Package: linalg
//
// Interop with gonum.org/v1/gonum/mat. Conversions copy through the logical
// view and widen/narrow between float32 and float64.

package linalg

import "gonum.org/v1/gonum/mat"

// Dense returns the logical view of m as a new *mat.Dense.
// An empty matrix converts to the zero-value mat.Dense, since gonum forbids
// zero-length dimensions in mat.NewDense.
// Complexity: O(r*c).
func (m *Matrix) Dense() *mat.Dense {
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	flat := m.Flatten()
	data := make([]float64, len(flat))
	for i, v := range flat {
		data[i] = float64(v)
	}

	return mat.NewDense(rows, cols, data)
}

// FromGonum copies any gonum matrix (including transposed views such as
// a.T()) into a new untransposed Matrix, narrowing values to float32.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	buf := make([]float32, r*c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			buf[base+j] = float32(a.At(i, j))
		}
	}

	return &Matrix{r: r, c: c, data: buf}
}
