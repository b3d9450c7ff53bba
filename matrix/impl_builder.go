// SPDX-License-Identifier: MIT

// Package matrix - constructors beyond New: flat-slice factory, zeros, identity.
//
// Determinism:
//   - Fixed row-major fill order; no randomness.

package matrix

import "fmt"

const (
	ctxFromFlat    = "FromFlat"
	ctxNewZeros    = "NewZeros"
	ctxNewIdentity = "NewIdentity"
)

// FromFlat partitions values into rows consecutive chunks of cols elements.
// values is copied; the caller keeps ownership of its slice.
//
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and rows*cols == len(values).
//   - Stage 2: copy values into one contiguous buffer and slice it per row.
//
// Errors:
//   - ErrInvalidDimensions with the offending numbers in the message.
//
// Complexity:
//   - Time O(len(values)), Space O(len(values)).
func FromFlat(values []int, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFromFlat,
			fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if rows*cols != len(values) {
		return nil, matrixErrorf(ctxFromFlat,
			fmt.Errorf("%d×%d needs %d values, got %d: %w", rows, cols, rows*cols, len(values), ErrInvalidDimensions))
	}
	out := allocRows(rows, cols)
	for i := range out {
		copy(out[i], values[i*cols:(i+1)*cols])
	}

	return newOwned(out), nil
}

// NewZeros returns a rows×cols zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
func NewZeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNewZeros, ErrInvalidDimensions)
	}

	return newOwned(allocRows(rows, cols)), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// AI-Hints: Use as the neutral element for MulMatrix in property tests.
func NewIdentity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxNewIdentity, ErrInvalidDimensions)
	}
	rows := allocRows(n, n)
	for i := 0; i < n; i++ {
		rows[i][i] = 1
	}

	return newOwned(rows), nil
}
