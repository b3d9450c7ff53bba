// SPDX-License-Identifier: MIT

// Package matrix - integer Matrix storage & safe accessors.
//
// Purpose:
//   - Own a private row-of-rows copy of the caller's data so no operation can
//     observe later caller-side mutation.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep Replace as the single guarded in-place mutation.
//
// Complexity quicksheet:
//   - New/Clone/Data: O(r*c); Rows/Cols/Shape/At: O(1); Replace: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxReplace = "Replace"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// copyRows returns a deep copy of rows. Assumes rows is rectangular.
func copyRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// New validates rows and returns a Matrix owning a deep copy of them.
//
// Errors:
//   - ErrNotMatrix when rows is empty, starts with an empty row, or is ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]int) (*Matrix, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix{rows: copyRows(rows)}, nil
}

// newOwned wraps rows without copying. Internal kernels use it for freshly
// allocated results they own exclusively.
func newOwned(rows [][]int) *Matrix { return &Matrix{rows: rows} }

// allocRows allocates a zeroed r×c grid backed by one contiguous buffer.
func allocRows(r, c int) [][]int {
	buf := make([]int, r*c)
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = buf[i*c : (i+1)*c : (i+1)*c]
	}

	return rows
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns, 0 for a zero-value Matrix.
func (m *Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// Shape returns (rows, cols), recomputed from the data.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// At returns the cell (i, j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return m.rows[i][j], nil
}

// Data returns a deep copy of the rows; mutating it does not affect m.
func (m *Matrix) Data() [][]int { return copyRows(m.rows) }

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix { return newOwned(copyRows(m.rows)) }

// Equal reports whether m and other have the same shape and cells.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i, row := range m.rows {
		for j, v := range row {
			if other.rows[i][j] != v {
				return false
			}
		}
	}

	return true
}

// Replace swaps the receiver's contents for a deep copy of rows, but only
// when rows is itself a valid matrix. On error the receiver is unchanged.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrNotMatrix for empty or ragged rows.
func (m *Matrix) Replace(rows [][]int) error {
	if m == nil {
		return matrixErrorf(ctxReplace, ErrNilMatrix)
	}
	if err := ValidateRows(rows); err != nil {
		return matrixErrorf(ctxReplace, err)
	}
	m.rows = copyRows(rows)

	return nil
}

// String renders m as "[[1, 2], [3, 4]]".
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, row := range m.rows {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
