// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Reductions (Sum, SumVec), the matrix-vector product (DotVec), 1-D slice
//     accessors (Row, Col) and vector broadcast operators (AddVec...DivVec).
//
// Determinism:
//   - Fixed loop orders over the LOGICAL view (i→j), so results do not depend
//     on the physical orientation of the receiver.

package linalg

// Operator tags used in error wrappers.
const (
	opDotVec = "Matrix.DotVec"
	opRow    = "Matrix.Row"
	opCol    = "Matrix.Col"
	opAddVec = "Matrix.AddVec"
	opSubVec = "Matrix.SubVec"
	opMulVec = "Matrix.MulVec"
	opDivVec = "Matrix.DivVec"
)

// Sum returns the sum of all elements.
// Complexity: O(r*c).
func (m *Matrix) Sum() float32 {
	var s float32
	for _, v := range m.data {
		s += v
	}

	return s
}

// SumVec returns one entry per logical column: the sum of that column over
// all logical rows.
// Complexity: Time O(r*c), Space O(c).
func (m *Matrix) SumVec() *Vector {
	rows, cols := m.Shape()
	out := make([]float32, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j] += m.at(i, j)
		}
	}

	return &Vector{data: out}
}

// DotVec computes the matrix-vector product over the logical view:
// result[i] = Σ_j M[i][j]*v[j].
//
// Errors: ErrNilOperand, *VectorShapeMismatchError when v.Len() != Cols().
// Complexity: Time O(r*c), Space O(r).
func (m *Matrix) DotVec(v *Vector) (*Vector, error) {
	rows, cols := m.Shape()
	if err := ValidateVecLen(v, cols); err != nil {
		return nil, matrixErrorf(opDotVec, err)
	}
	out := make([]float32, rows)
	var acc float32
	for i := 0; i < rows; i++ {
		acc = 0
		for j := 0; j < cols; j++ {
			acc += m.at(i, j) * v.data[j]
		}
		out[i] = acc
	}

	return &Vector{data: out}, nil
}

// Row returns the i-th slice along the second index: the entries M[k][i] for
// every logical row k. It is bounded by the logical column count.
//
// The pairing is inverted relative to the name: for
// [[3,2,4],[4,5,6]], Row(0) is [3,4] and Row(3) fails with
// IndexOutOfBoundsError{Axis: AxisRow, Max: 2}.
//
// Errors: *IndexOutOfBoundsError (ErrIndexOutOfBounds).
// Complexity: O(Rows()).
func (m *Matrix) Row(i int) (*Vector, error) {
	rows, cols := m.Shape()
	if err := validateAxis(AxisRow, i, cols); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	out := make([]float32, rows)
	for k := 0; k < rows; k++ {
		out[k] = m.at(k, i)
	}

	return &Vector{data: out}, nil
}

// Col returns the i-th slice along the first index: the entries M[i][k] for
// every logical column k. It is bounded by the logical row count.
//
// For [[3,2,4],[4,5,6]], Col(1) is [4,5,6] and Col(2) fails with
// IndexOutOfBoundsError{Axis: AxisCol, Max: 1}.
//
// Errors: *IndexOutOfBoundsError (ErrIndexOutOfBounds).
// Complexity: O(Cols()).
func (m *Matrix) Col(i int) (*Vector, error) {
	rows, cols := m.Shape()
	if err := validateAxis(AxisCol, i, rows); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	out := make([]float32, cols)
	for k := 0; k < cols; k++ {
		out[k] = m.at(i, k)
	}

	return &Vector{data: out}, nil
}

// ewVec combines v with m using the established broadcast mapping.
// MAIN DESCRIPTION:
//   - For every physical row p, the leading physical element (offset p*c) is
//     combined with v at the logical row that offset resolves to. Untransposed,
//     physical row p feeds v[p] into M[p][0]; transposed, every leading element
//     lies in logical row 0 and takes v[0].
//
// Implementation:
//   - Stage 1: require v.Len() == Cols() (same bound in both orientations).
//   - Stage 2: walk physical rows; skip rows whose logical row index has no
//     matching vector entry.
//
// Errors:
//   - ErrNilOperand, *VectorShapeMismatchError.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Matrix) ewVec(tag string, v *Vector, op func(a, b float32) float32) error {
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return matrixErrorf(tag, err)
	}
	if len(m.data) == 0 {
		return nil
	}
	var off, i int
	for p := 0; p < m.r; p++ {
		off = p * m.c
		i, _ = logicalOf(off, m.c, m.transposed)
		if i >= len(v.data) {
			continue
		}
		m.data[off] = op(m.data[off], v.data[i])
	}

	return nil
}

// AddVec adds vector entries into m (see ewVec for the mapping).
// Errors: ErrNilOperand, *VectorShapeMismatchError when v.Len() != Cols().
func (m *Matrix) AddVec(v *Vector) error { return m.ewVec(opAddVec, v, add) }

// SubVec subtracts vector entries from m (see ewVec for the mapping).
// Errors: ErrNilOperand, *VectorShapeMismatchError when v.Len() != Cols().
func (m *Matrix) SubVec(v *Vector) error { return m.ewVec(opSubVec, v, sub) }

// MulVec multiplies m by vector entries (see ewVec for the mapping).
// Errors: ErrNilOperand, *VectorShapeMismatchError when v.Len() != Cols().
func (m *Matrix) MulVec(v *Vector) error { return m.ewVec(opMulVec, v, mul) }

// DivVec divides m by vector entries (see ewVec for the mapping).
// Errors: ErrNilOperand, *VectorShapeMismatchError when v.Len() != Cols().
func (m *Matrix) DivVec(v *Vector) error { return m.ewVec(opDivVec, v, div) }
