// SPDX-License-Identifier: MIT
package linalg_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
)

// fixtureBytes encodes [[2,3],[7,4]].
var fixtureBytes = []byte{
	0, 0, 0, 64, 0, 0, 0, 64,
	0, 0, 0, 64, 0, 0, 64, 64, 0, 0, 224, 64, 0, 0, 128, 64,
}

// TestBytes matches the literal little-endian layout.
func TestBytes(t *testing.T) {
	got, err := mustNew(t, [][]float32{{2, 3}, {7, 4}}).Bytes()
	require.NoError(t, err)
	require.Equal(t, fixtureBytes, got)
}

// TestNewBytes decodes the literal layout and re-encodes it unchanged.
func TestNewBytes(t *testing.T) {
	m, err := linalg.NewBytes(fixtureBytes)
	require.NoError(t, err)
	requireMatrixEqual(t, mustNew(t, [][]float32{{2, 3}, {7, 4}}), m)
	require.False(t, m.IsTranspose())

	again, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, fixtureBytes, again)
}

// TestBytesTransposed encodes the logical view and decodes untransposed.
func TestBytesTransposed(t *testing.T) {
	m := base23(t)
	m.Transpose()

	buf, err := m.Bytes()
	require.NoError(t, err)
	require.Len(t, buf, 8+6*4)
	require.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	require.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))

	dec, err := linalg.NewBytes(buf)
	require.NoError(t, err)
	require.False(t, dec.IsTranspose())
	requireMatrixEqual(t, m, dec)
	require.Equal(t, m.Flatten(), dec.Flatten())
}

// TestBytesEmpty round-trips a header-only buffer.
func TestBytesEmpty(t *testing.T) {
	m, err := linalg.NewZero(0, 4)
	require.NoError(t, err)
	buf, err := m.Bytes()
	require.NoError(t, err)
	require.Len(t, buf, 8)

	dec, err := linalg.NewBytes(buf)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Rows())
	require.Equal(t, 4, dec.Cols())
}

// header builds an 8-byte header from raw float32 values.
func header(rows, cols float32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(rows))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(cols))

	return buf
}

// TestNewBytesErrors rejects malformed buffers with ErrLengthMismatch.
func TestNewBytesErrors(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
	}{
		{"nil", nil},
		{"short_header", []byte{0, 0, 0, 64}},
		{"short_payload", fixtureBytes[:len(fixtureBytes)-1]},
		{"long_payload", append(append([]byte{}, fixtureBytes...), 0, 0, 0, 0)},
		{"negative_rows", header(-1, 2)},
		{"fractional_cols", append(header(1, 1.5), make([]byte, 8)...)},
		{"nan_rows", header(float32(math.NaN()), 1)},
		{"inf_cols", header(1, float32(math.Inf(1)))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linalg.NewBytes(tc.buf)
			require.ErrorIs(t, err, linalg.ErrLengthMismatch)
		})
	}
}

// TestBinaryMarshaler exercises the encoding interfaces.
func TestBinaryMarshaler(t *testing.T) {
	src := rhs32(t)
	buf, err := src.MarshalBinary()
	require.NoError(t, err)

	var dst linalg.Matrix
	require.NoError(t, dst.UnmarshalBinary(buf))
	requireMatrixEqual(t, src, &dst)

	keep := dst.Clone()
	require.ErrorIs(t, dst.UnmarshalBinary([]byte{1, 2, 3}), linalg.ErrLengthMismatch)
	requireMatrixEqual(t, keep, &dst)
}
