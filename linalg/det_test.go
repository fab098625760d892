// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDet covers the base cases and the recursive expansion.
func TestDet(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float32
		want float32
	}{
		{"1x1", [][]float32{{-7}}, -7},
		{"2x2_a", [][]float32{{1, 2}, {3, 4}}, -2},
		{"2x2_b", [][]float32{{3, 8}, {4, 6}}, -14},
		{"2x2_c", [][]float32{{4, 6}, {3, 8}}, 14},
		{"3x3_a", [][]float32{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, -46},
		{"3x3_b", [][]float32{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -316},
		{"4x4", [][]float32{
			{6, 1, 1, 4},
			{4, -2, 5, -7},
			{2, 8, 7, 3},
			{4, 1, 4, 2},
		}, -3748},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustNew(t, tc.in).Det()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDetEmpty returns the empty product.
func TestDetEmpty(t *testing.T) {
	m, err := linalg.NewZero(0, 0)
	require.NoError(t, err)
	got, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, float32(1), got)
}

// TestDetNonSquare rejects a 4×3 matrix.
func TestDetNonSquare(t *testing.T) {
	m := mustNew(t, [][]float32{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}, {2, 0, -1}})
	_, err := m.Det()
	require.ErrorIs(t, err, linalg.ErrSquareRequired)
	require.ErrorContains(t, err, "the matrix has to be a square matrix")

	m.Transpose()
	_, err = m.Det()
	require.ErrorIs(t, err, linalg.ErrSquareRequired)
}

// TestDetTransposed evaluates the logical view.
func TestDetTransposed(t *testing.T) {
	m := mustNew(t, [][]float32{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})
	m.Transpose()
	got, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, float32(-6), got)

	sym := mustNew(t, [][]float32{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	before, err := sym.Det()
	require.NoError(t, err)
	sym.Transpose()
	after, err := sym.Det()
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, float32(4), after)
}

// TestDetLeavesReceiver checks that minors never alias the parent storage.
func TestDetLeavesReceiver(t *testing.T) {
	m := mustNew(t, [][]float32{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})
	snapshot := m.Clone()
	_, err := m.Det()
	require.NoError(t, err)
	requireMatrixEqual(t, snapshot, m)
}

// TestDetAgainstGonum cross-checks the shapes on which the expansion is the
// textbook determinant.
func TestDetAgainstGonum(t *testing.T) {
	inputs := [][][]float32{
		{{1, 2}, {3, 4}},
		{{0.5, -1.25}, {8, 3}},
		{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}},
		{{4, 1, 2}, {1, 3, 0}, {2, 0, 5}},
		{{1, 7, -3}, {7, -2, 4}, {-3, 4, 9}},
	}
	for _, in := range inputs {
		m := mustNew(t, in)
		got, err := m.Det()
		require.NoError(t, err)
		require.InDelta(t, mat.Det(m.Dense()), float64(got), 1e-3, "input %v", in)
	}
}
