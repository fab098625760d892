// Package lvmath is a small numeric toolkit built around dense float32
// matrices and vectors.
//
// Under the hood, everything is organized under two subpackages:
//
//	linalg/   Vector, Matrix with lazy transpose, elementwise & broadcast
//	          arithmetic, determinant, deterministic random construction and
//	          the GPU-ready byte codec
//	store/    SQLite-backed persistence of matrices using the byte codec
//
// Quick example:
//
//	m, _ := linalg.New([][]float32{{1, 2}, {3, 4}})
//	d, _ := m.Det() // -2
//	m.Transpose()   // O(1), no data moved
//
//	go get github.com/katalvlaran/lvmath
package lvmath
