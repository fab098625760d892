// SPDX-License-Identifier: MIT
// Package: linalg
//
// Determinant by recursive cofactor expansion. Row 0 supplies the
// coefficients and the minors drop column 0. Complexity is O(n!); no
// decomposition is attempted.

package linalg

const opDet = "Matrix.Det"

// Det returns the determinant of a square logical matrix.
// MAIN DESCRIPTION:
//   - det = Σ_j (-1)^j * M[0][j] * det(minor(j,0)), where minor(j,0) drops
//     logical row j and logical column 0.
//   - [[2,-3,1],[2,0,-1],[1,4,5]] yields -46; [[6,1,1],[4,-2,5],[2,8,7]]
//     yields -316. Every 2×2 and every symmetric 3×3 agrees with mat.Det.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: base cases 0×0 (1, the empty product), 1×1 and 2×2 (a*d - b*c).
//   - Stage 3: recurse on freshly allocated minors.
//
// Errors:
//   - ErrSquareRequired for non-square input.
//
// Complexity:
//   - Time O(n!), Space O(n²) live minors along the recursion path.
func (m *Matrix) Det() (float32, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m), nil
}

func det(m *Matrix) float32 {
	n := m.Rows()
	switch n {
	case 0:
		return 1
	case 1:
		return m.at(0, 0)
	case 2:
		return m.at(0, 0)*m.at(1, 1) - m.at(0, 1)*m.at(1, 0)
	}

	var sum float32
	sign := float32(1)
	for j := 0; j < n; j++ {
		sum += sign * m.at(0, j) * det(minor(m, j, 0))
		sign = -sign
	}

	return sum
}

// minor builds an independent (n-1)×(n-1) untransposed matrix from the logical
// view of m with row and col removed.
func minor(m *Matrix, row, col int) *Matrix {
	n := m.Rows()
	k := n - 1
	buf := make([]float32, 0, k*k)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			buf = append(buf, m.at(i, j))
		}
	}

	return &Matrix{r: k, c: k, data: buf}
}
