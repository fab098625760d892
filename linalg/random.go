// SPDX-License-Identifier: MIT
// Package: linalg
//
// Deterministic random construction. Each NewRand call builds its own seeded
// generator, so a smaller request always yields a prefix of the stream drawn
// for a larger one.

package linalg

import "math/rand/v2"

const opNewRand = "NewRand"

// newSource returns a freshly seeded PCG generator.
func newSource(hi, lo uint64) *rand.Rand {
	return rand.New(rand.NewPCG(hi, lo))
}

// NewRand returns a rows×cols matrix filled with uniform values in [0, 1).
//
// Behavior highlights:
//   - Values are drawn in physical row-major order from a generator seeded
//     with DefaultSeedHi/DefaultSeedLo (or WithSeed).
//   - NewRand(2,3) yields exactly the first 6 values of NewRand(3,4).
//
// Errors: ErrInvalidDimensions for negative dims.
// Complexity: O(rows*cols).
func NewRand(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewRand, err)
	}
	o := gatherOptions(opts...)
	src := newSource(o.seedHi, o.seedLo)
	buf := make([]float32, rows*cols)
	for k := range buf {
		buf[k] = src.Float32()
	}

	return &Matrix{r: rows, c: cols, data: buf}, nil
}
