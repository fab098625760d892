// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
)

// ExampleMatrix_Transpose shows that transposing only changes the view.
func ExampleMatrix_Transpose() {
	m, _ := linalg.New([][]float32{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()
	fmt.Print(m)
	fmt.Println(m.Rows(), m.Cols(), m.Flatten())
	// Output:
	// [1.0, 4.0]
	// [2.0, 5.0]
	// [3.0, 6.0]
	// 3 2 [1 4 2 5 3 6]
}

// ExampleMatrix_Det evaluates a 2×2 determinant.
func ExampleMatrix_Det() {
	m, _ := linalg.New([][]float32{{1, 2}, {3, 4}})
	d, err := m.Det()
	fmt.Println(d, err)
	// Output: -2 <nil>
}

// ExampleMatrix_DotVec multiplies a matrix by a vector.
func ExampleMatrix_DotVec() {
	m, _ := linalg.New([][]float32{{1, -1, 2}, {0, -3, 1}})
	v, _ := m.DotVec(linalg.NewVector([]float32{2, 1, 0}))
	fmt.Println(v)
	// Output: [1.0, -3.0]
}

// ExampleMatrix_Bytes prints the little-endian float32 buffer.
func ExampleMatrix_Bytes() {
	m, _ := linalg.New([][]float32{{2, 3}, {7, 4}})
	buf, _ := m.Bytes()
	fmt.Println(len(buf), buf[:8])
	// Output: 24 [0 0 0 64 0 0 0 64]
}
