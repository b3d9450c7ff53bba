// SPDX-License-Identifier: MIT

// Package matrix - minor extraction.
//
// Two explicitly named variants exist:
//   - DeleteRowAndColumn(m, row, col) removes an arbitrary row and column
//     (cofactor minors M_ij).
//   - FirstRowMinor(m, col) always removes row 0 and the given column; it is
//     the minor used by Laplace expansion along the first row.
//
// Both return freshly allocated matrices and never touch the source.

package matrix

import "fmt"

const (
	ctxDeleteRowAndColumn = "DeleteRowAndColumn"
	ctxFirstRowMinor      = "FirstRowMinor"
)

// DeleteRowAndColumn returns a copy of m without row `row` and column `col`.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrInvalidDimensions when m has a single row or column (the result would be empty).
//   - ErrOutOfRange when row or col is outside m.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func DeleteRowAndColumn(m *Matrix, row, col int) (*Matrix, error) {
	if err := checkMinor(m, row, col); err != nil {
		return nil, matrixErrorf(ctxDeleteRowAndColumn, err)
	}

	return newOwned(minorRows(m.rows, row, col)), nil
}

// FirstRowMinor returns a copy of m without row 0 and column `col`.
//
// Errors:
//   - Same as DeleteRowAndColumn with row fixed to 0.
//
// AI-Hints:
//   - Prefer DeleteRowAndColumn unless you are expanding along row 0.
func FirstRowMinor(m *Matrix, col int) (*Matrix, error) {
	if err := checkMinor(m, 0, col); err != nil {
		return nil, matrixErrorf(ctxFirstRowMinor, err)
	}

	return newOwned(minorRows(m.rows, 0, col)), nil
}

// checkMinor validates a (row, col) deletion request on m.
func checkMinor(m *Matrix, row, col int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return fmt.Errorf("%d×%d has no minor: %w", m.Rows(), m.Cols(), ErrInvalidDimensions)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return nil
}

// minorRows copies rows skipping row `skipRow` and column `skipCol`.
// Assumes the indices were validated and rows is at least 2×2.
func minorRows(rows [][]int, skipRow, skipCol int) [][]int {
	r, c := len(rows), len(rows[0])
	out := allocRows(r-1, c-1)
	dst := 0
	for i, row := range rows {
		if i == skipRow {
			continue
		}
		copy(out[dst], row[:skipCol])
		copy(out[dst][skipCol:], row[skipCol+1:])
		dst++
	}

	return out
}
