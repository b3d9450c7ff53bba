// SPDX-License-Identifier: MIT

// Package matrix - cofactor matrix, adjugate and inverse via the adjugate method.
//
// Math:
//   - C[i][j] = (-1)^(i+j) * det(M_ij), M_ij = m without row i and column j.
//   - adj(m) = Cᵀ.
//   - m⁻¹[i][j] = round((1/det(m)) * Cᵀ[i][j], precision).
//
// The rounding to a fixed number of decimals (3 by default) is part of the
// contract: exact fractions are not produced.

package matrix

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Cofactors returns the cofactor matrix of a square m.
// A 1×1 matrix has the single cofactor 1 (the determinant of the empty minor).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactors(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	o := gatherOptions(opts...)

	return newOwned(cofactorRows(m.rows, o.parallel)), nil
}

// cofactorRows computes the cofactor grid. Assumes rows is square.
// With parallel set, each output row is computed by its own goroutine.
func cofactorRows(rows [][]int, parallel bool) [][]int {
	n := len(rows)
	out := allocRows(n, n)
	if n == 1 {
		out[0][0] = 1
		return out
	}

	fillRow := func(i int) {
		for j := 0; j < n; j++ {
			c := det(minorRows(rows, i, j))
			if (i+j)%2 == 1 {
				c = -c
			}
			out[i][j] = c
		}
	}

	if !parallel {
		for i := 0; i < n; i++ {
			fillRow(i)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fillRow(i) // rows are disjoint; no shared writes
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Adjugate returns the transpose of m (rows and columns swapped), for any
// rectangular m. Applied to a cofactor matrix it yields the classical adjugate.
//
// Errors:
//   - ErrNilMatrix.
func Adjugate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return newOwned(transposeRows(m.rows)), nil
}

// Inverse returns m⁻¹ computed as adj(C)/det, each cell rounded to
// Options.Precision() decimals (DefaultPrecision = 3).
// Implementation:
//   - Stage 1: ValidateSquare; det(m); det == 0 → ErrSingular.
//   - Stage 2: cofactor grid, transpose, scale by 1/det, round to precision decimals.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - No pivoting and no exact fractions. Rounded outputs mean A×A⁻¹ equals
//     I only within about 10^-precision · n · max|A|.
//
// AI-Hints:
//   - Check the round trip with VerifyInverse and a WithEpsilon tolerance.
func Inverse(m *Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	var d int
	if o.parallel {
		d = detParallel(m.rows)
	} else {
		d = det(m.rows)
	}
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj := transposeRows(cofactorRows(m.rows, o.parallel))
	n := len(adj)
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	scale := 1.0 / float64(d)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = roundTo(scale*float64(adj[i][j]), o.precision)
		}
	}

	return res, nil
}

// VerifyInverse reports whether a·inv equals the identity within the
// configured Epsilon (DefaultEpsilon unless WithEpsilon is given).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare for a; ErrDimensionMismatch when inv does
//     not match a's shape.
func VerifyInverse(a *Matrix, inv *Dense, opts ...Option) (bool, error) {
	if err := ValidateSquare(a); err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}
	if inv == nil {
		return false, matrixErrorf(opVerifyInverse, ErrNilMatrix)
	}
	if inv.r != a.Rows() || inv.c != a.Cols() {
		return false, matrixErrorf(opVerifyInverse, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	prod, err := MulDense(a, inv)
	if err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}

	return prod.IsIdentityWithin(o.eps)
}

// roundTo rounds v to digits decimals and folds -0 into +0. The decimal
// step goes through strconv so the exact binary value decides halfway
// cases (1/2000 rounds to 0.001), with exact ties going to even.
func roundTo(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil || r == 0 {
		return 0
	}

	return r
}
