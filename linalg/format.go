// SPDX-License-Identifier: MIT

package linalg

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
	_fmtIntegral = ".0"
)

// String renders one line per logical row, e.g.
//
//	[1.0, -1.0, 2.0]
//	[0.0, -3.0, 1.0]
//
// Every line, including the last, ends with a newline.
func (m *Matrix) String() string {
	var b strings.Builder
	rows, cols := m.Shape()
	row := make([]float32, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = m.at(i, j)
		}
		writeRow(&b, row)
		b.WriteString(_fmtNewline)
	}

	return b.String()
}

// writeRow writes "[v0, v1, ...]" without a trailing newline.
func writeRow(b *strings.Builder, vals []float32) {
	b.WriteString(_fmtRowOpen)
	for j, v := range vals {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatValue(v))
	}
	b.WriteString(_fmtRowClose)
}

// formatValue prints the shortest decimal that round-trips v as float32,
// never in exponent form; integral values keep a ".0" suffix.
func formatValue(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if strings.ContainsAny(s, ".IN") { // fraction, ±Inf or NaN
		return s
	}

	return s + _fmtIntegral
}
