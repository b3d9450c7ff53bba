// SPDX-License-Identifier: MIT

// Package matrix - determinant by Laplace (cofactor) expansion.
//
// Algorithm:
//   - 1×1: the single cell.
//   - 2×2: m00*m11 - m01*m10.
//   - n×n: Σ_j (-1)^j * m0j * det(FirstRowMinor(m, j)), sign starting positive.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. The textbook method is
//     intentional; use it for small matrices only (n ≲ 10).
//
// Determinism:
//   - Integer arithmetic is exact, so WithParallel returns the same value as
//     the sequential path; terms are summed in column order either way.

package matrix

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Determinant returns det(m) by Laplace expansion along row 0.
// Implementation:
//   - Stage 1: ValidateSquare (nil → ErrNilMatrix, r≠c → ErrNonSquare).
//   - Stage 2: recursive expansion; WithParallel fans out the top-level terms.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithParallel / WithSequential.
//
// Returns:
//   - int: the determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Notes:
//   - Integer overflow wraps silently like any Go int arithmetic.
func Determinant(m *Matrix, opts ...Option) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	if o.parallel {
		return detParallel(m.rows), nil
	}

	return det(m.rows), nil
}

// det is the sequential recursive kernel. Assumes rows is square and non-empty.
func det(rows [][]int) int {
	switch len(rows) {
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}

	var sum int
	sign := 1
	for col, v := range rows[0] {
		// A zero coefficient contributes nothing; skip the whole subtree.
		if v != 0 {
			sum += sign * v * det(minorRows(rows, 0, col))
		}
		sign = -sign
	}

	return sum
}

// detParallel evaluates each top-level term in its own goroutine (bounded by
// GOMAXPROCS) and sums them in column order.
func detParallel(rows [][]int) int {
	n := len(rows)
	if n <= 2 {
		return det(rows)
	}

	terms := make([]int, n)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for col := 0; col < n; col++ {
		v := rows[0][col]
		if v == 0 {
			continue
		}
		g.Go(func() error {
			sign := 1
			if col%2 == 1 {
				sign = -1
			}
			terms[col] = sign * v * det(minorRows(rows, 0, col))
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	var sum int
	for _, t := range terms {
		sum += t
	}

	return sum
}
