// SPDX-License-Identifier: MIT

// Package matrix - Dense float64 storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold non-integer results (Inverse, MulDense) in a cache-friendly
//     row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const ctxSet = "Set"

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float64 matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a fresh Dense.
//
// Errors:
//   - ErrNotMatrix for empty or ragged rows.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if !isRectangular(rows) {
		return nil, matrixErrorf("NewDenseFromRows", ErrNotMatrix)
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Data returns the contents as a freshly allocated [][]float64.
func (m *Dense) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// IsIdentityWithin reports whether m is square and |m - I| ≤ tol cell-wise.
//
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrNaNInf for a non-finite tol.
//
// Complexity:
//   - Time O(n²), early exit on first violation.
func (m *Dense) IsIdentityWithin(tol float64) (bool, error) {
	if m == nil {
		return false, matrixErrorf("IsIdentityWithin", ErrNilMatrix)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, matrixErrorf("IsIdentityWithin", ErrNaNInf)
	}
	tol = math.Abs(tol)
	if m.r != m.c {
		return false, nil
	}
	var i, j int
	var want float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(m.data[i*m.c+j]-want) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// String renders m as "[[0.6, -0.7], [-0.2, 0.4]]" using the shortest
// representation that round-trips each value.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
