// SPDX-License-Identifier: MIT
// Package: linalg
//
// Raw byte codec for handing matrix data to an external (e.g. GPU) buffer.
//
// Layout, little-endian IEEE-754 float32:
//
//	offset 0: rows (float32)
//	offset 4: cols (float32)
//	offset 8: rows*cols values of the logical view, row-major
//
// The header is float32 so the whole buffer can be bound as one float array.

package linalg

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	headerSize = 8 // two float32 header fields
	floatSize  = 4 // bytes per float32

	// maxExactDim is the largest integer float32 represents exactly.
	maxExactDim = 1 << 24
)

var (
	_ encoding.BinaryMarshaler   = (*Matrix)(nil)
	_ encoding.BinaryUnmarshaler = (*Matrix)(nil)
)

// Bytes encodes the current logical view (header + payload).
//
// Errors: ErrInvalidDimensions when a logical dimension exceeds 2^24 and
// cannot be stored exactly in the float32 header.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Bytes() ([]byte, error) {
	rows, cols := m.Shape()
	if rows > maxExactDim || cols > maxExactDim {
		return nil, fmt.Errorf("Matrix.Bytes: %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	flat := m.Flatten()
	buf := make([]byte, headerSize+len(flat)*floatSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(rows)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(cols)))
	for i, v := range flat {
		binary.LittleEndian.PutUint32(buf[headerSize+i*floatSize:], math.Float32bits(v))
	}

	return buf, nil
}

// NewBytes decodes a buffer produced by Bytes into an untransposed matrix.
// MAIN DESCRIPTION:
//   - Parses the header first, then requires len(buf) == 8 + rows*cols*4.
//
// Errors:
//   - ErrLengthMismatch for a short buffer, a header that is not a
//     non-negative integer pair, or a payload of the wrong size.
//
// Complexity: O(len(buf)).
func NewBytes(buf []byte) (*Matrix, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("NewBytes: %d bytes, header needs %d: %w", len(buf), headerSize, ErrLengthMismatch)
	}
	rows, err := decodeDim(buf[0:])
	if err != nil {
		return nil, fmt.Errorf("NewBytes: rows: %w", err)
	}
	cols, err := decodeDim(buf[4:])
	if err != nil {
		return nil, fmt.Errorf("NewBytes: cols: %w", err)
	}
	want := int64(headerSize) + int64(rows)*int64(cols)*floatSize
	if int64(len(buf)) != want {
		return nil, fmt.Errorf("NewBytes: expected %d bytes, got %d: %w", want, len(buf), ErrLengthMismatch)
	}
	data := make([]float32, rows*cols)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[headerSize+i*floatSize:]))
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// decodeDim reads one float32 header field and checks it is an exact
// non-negative integer no larger than maxExactDim.
func decodeDim(b []byte) (int, error) {
	f := math.Float32frombits(binary.LittleEndian.Uint32(b))
	if math.IsNaN(float64(f)) || f < 0 || f > maxExactDim || f != float32(math.Trunc(float64(f))) {
		return 0, fmt.Errorf("malformed header value %v: %w", f, ErrLengthMismatch)
	}

	return int(f), nil
}

// MarshalBinary implements encoding.BinaryMarshaler using Bytes.
func (m *Matrix) MarshalBinary() ([]byte, error) { return m.Bytes() }

// UnmarshalBinary implements encoding.BinaryUnmarshaler using NewBytes.
// On error m is left unchanged.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	dec, err := NewBytes(data)
	if err != nil {
		return err
	}
	*m = *dec

	return nil
}
