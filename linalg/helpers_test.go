// SPDX-License-Identifier: MIT
// Package linalg_test contains small fixtures shared by the test files.

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
)

// mustNew builds a matrix from rows or fails the test.
func mustNew(t testing.TB, rows [][]float32) *linalg.Matrix {
	t.Helper()
	m, err := linalg.New(rows)
	require.NoError(t, err)

	return m
}

// requireMatrixEqual compares logical shape and values, printing both on failure.
func requireMatrixEqual(t testing.TB, want, got *linalg.Matrix) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%sgot:\n%s", want, got)
}

// base23 is the 2×3 operand used by most arithmetic fixtures.
func base23(t testing.TB) *linalg.Matrix {
	return mustNew(t, [][]float32{{2, -3, 1}, {2, 0, -1}})
}

// rhs23 and rhs32 are the right-hand operands for the untransposed and
// transposed legs of the arithmetic fixtures.
func rhs23(t testing.TB) *linalg.Matrix {
	return mustNew(t, [][]float32{{2, 3, 5}, {7, 1, 4}})
}

func rhs32(t testing.TB) *linalg.Matrix {
	return mustNew(t, [][]float32{{2, -4}, {7, 1}, {-3, 5}})
}
