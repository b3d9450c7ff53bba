// SPDX-License-Identifier: MIT

// Package matrix - approximate comparison of float results.
//
// Purpose:
//   - Compare rounded Inverse outputs and mixed products against references
//     without exact float equality.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	var diff float64
	for idx, av := range a.data {
		diff = math.Abs(av - b.data[idx])
		if diff > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// ToDense converts an integer matrix to float64 storage, e.g. to compare it
// with AllClose.
func ToDense(m *Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	res, err := NewDense(m.Shape())
	if err != nil {
		return nil, err
	}
	for i, row := range m.rows {
		for j, v := range row {
			res.data[i*res.c+j] = float64(v)
		}
	}

	return res, nil
}
