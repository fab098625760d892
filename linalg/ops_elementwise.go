// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Elementwise matrix-matrix and matrix-scalar arithmetic, in place on the
//     receiver, plus value-returning Add/Sub/Mul/Div facades.
//
// Design:
//   - One private kernel (ewMat) serves all four matrix-matrix operators; the
//     operator is a small func value.
//   - Fast path: when both operands share the transpose flag their physical
//     layouts coincide and the kernel runs over the flat buffers.
//   - Division follows IEEE-754: x/0 yields ±Inf or NaN, never an error.

package linalg

// Operator tags used in error wrappers.
const (
	opAddMat = "Matrix.AddMat"
	opSubMat = "Matrix.SubMat"
	opMulMat = "Matrix.MulMat"
	opDivMat = "Matrix.DivMat"
)

func add(a, b float32) float32 { return a + b }
func sub(a, b float32) float32 { return a - b }
func mul(a, b float32) float32 { return a * b }
func div(a, b float32) float32 { return a / b }

// ewMat applies m[i,j] = op(m[i,j], o[i,j]) at every logical position.
// Errors: ErrNilOperand, *ShapeMismatchError. Time O(r*c), Space O(1).
func (m *Matrix) ewMat(tag string, o *Matrix, op func(a, b float32) float32) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	if m.transposed == o.transposed {
		for k := range m.data {
			m.data[k] = op(m.data[k], o.data[k])
		}

		return nil
	}
	rows, cols := m.Shape()
	var off int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			off = offset(i, j, m.c, m.transposed)
			m.data[off] = op(m.data[off], o.at(i, j))
		}
	}

	return nil
}

// AddMat adds o to m elementwise at matching logical positions.
// Errors: ErrNilOperand, *ShapeMismatchError (ErrShapeMismatch).
func (m *Matrix) AddMat(o *Matrix) error { return m.ewMat(opAddMat, o, add) }

// SubMat subtracts o from m elementwise.
// Errors: ErrNilOperand, *ShapeMismatchError (ErrShapeMismatch).
func (m *Matrix) SubMat(o *Matrix) error { return m.ewMat(opSubMat, o, sub) }

// MulMat multiplies m by o elementwise (Hadamard product).
// Errors: ErrNilOperand, *ShapeMismatchError (ErrShapeMismatch).
func (m *Matrix) MulMat(o *Matrix) error { return m.ewMat(opMulMat, o, mul) }

// DivMat divides m by o elementwise with IEEE-754 semantics.
// Errors: ErrNilOperand, *ShapeMismatchError (ErrShapeMismatch).
func (m *Matrix) DivMat(o *Matrix) error { return m.ewMat(opDivMat, o, div) }

// ewScalar applies op(x, k) to every element. Position-independent, so it
// always runs over the flat buffer.
func (m *Matrix) ewScalar(k float32, op func(a, b float32) float32) {
	for i := range m.data {
		m.data[i] = op(m.data[i], k)
	}
}

// AddScalar adds k to every element.
func (m *Matrix) AddScalar(k float32) { m.ewScalar(k, add) }

// SubScalar subtracts k from every element.
func (m *Matrix) SubScalar(k float32) { m.ewScalar(k, sub) }

// MulScalar multiplies every element by k.
func (m *Matrix) MulScalar(k float32) { m.ewScalar(k, mul) }

// DivScalar divides every element by k (k == 0 yields ±Inf/NaN).
func (m *Matrix) DivScalar(k float32) { m.ewScalar(k, div) }

// ApplyFuncVal replaces every element x with f(x), in place.
// f should be pure; it is called once per element in physical order.
// Complexity: O(r*c).
func (m *Matrix) ApplyFuncVal(f func(float32) float32) {
	for i := range m.data {
		m.data[i] = f(m.data[i])
	}
}

// binaryOp clones a and applies the in-place operator with b.
func binaryOp(a, b *Matrix, inPlace func(m, o *Matrix) error) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilOperand
	}
	out := a.Clone()
	if err := inPlace(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// Add returns a + b as a new matrix; neither operand is modified.
// The result keeps a's orientation.
//
// Errors: ErrNilOperand, *ShapeMismatchError.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return binaryOp(a, b, (*Matrix).AddMat) }

// Sub returns a - b as a new matrix.
// Errors: ErrNilOperand, *ShapeMismatchError.
func Sub(a, b *Matrix) (*Matrix, error) { return binaryOp(a, b, (*Matrix).SubMat) }

// Mul returns the elementwise product a ∘ b as a new matrix.
// Errors: ErrNilOperand, *ShapeMismatchError.
func Mul(a, b *Matrix) (*Matrix, error) { return binaryOp(a, b, (*Matrix).MulMat) }

// Div returns the elementwise quotient a / b as a new matrix.
// Errors: ErrNilOperand, *ShapeMismatchError.
func Div(a, b *Matrix) (*Matrix, error) { return binaryOp(a, b, (*Matrix).DivMat) }
