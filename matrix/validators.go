// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Offer both predicate checks (IsMatrix, IsIdentity) for display-style
//    collaborators and error-returning validators for kernels.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// number is the cell type set accepted by the generic shape helpers.
type number interface {
	~int | ~float64
}

// isRectangular reports whether rows is non-empty, starts with a non-empty
// row and has no ragged rows.
// Complexity: O(rows).
func isRectangular[T number](rows [][]T) bool {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return false
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return false
		}
	}

	return true
}

// isIdentityRows reports whether rows is square with ones on the diagonal and
// zeros elsewhere. Assumes rows is rectangular.
// Complexity: O(n²), early exit on first violation.
func isIdentityRows[T number](rows [][]T) bool {
	n := len(rows)
	if n != len(rows[0]) {
		return false
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				if rows[i][j] != 1 {
					return false
				}
				continue
			}
			if rows[i][j] != 0 {
				return false
			}
		}
	}

	return true
}

// IsMatrix reports whether candidate is a well-formed matrix.
//
// Accepted types:
//   - *Matrix, *Dense: true when non-nil (constructors enforce the shape);
//   - [][]int, [][]float64: true when non-empty, the first row is non-empty
//     and every row has the first row's length.
//
// Any other type yields false, never an error.
// Complexity: O(rows) for raw slices, O(1) otherwise.
func IsMatrix(candidate any) bool {
	switch v := candidate.(type) {
	case *Matrix:
		return v != nil && isRectangular(v.rows)
	case *Dense:
		return v != nil && v.r > 0 && v.c > 0
	case [][]int:
		return isRectangular(v)
	case [][]float64:
		return isRectangular(v)
	default:
		return false
	}
}

// IsIdentity reports whether candidate is a square identity matrix.
// It requires IsMatrix(candidate); non-square inputs are rejected
// unconditionally. Comparison is exact (1 on the diagonal, 0 elsewhere).
// Complexity: O(n²).
//
// AI-Hints:
//   - For float results carrying rounding noise use (*Dense).IsIdentityWithin.
func IsIdentity(candidate any) bool {
	if !IsMatrix(candidate) {
		return false
	}
	switch v := candidate.(type) {
	case *Matrix:
		return isIdentityRows(v.rows)
	case *Dense:
		ok, _ := v.IsIdentityWithin(0)
		return ok
	case [][]int:
		return isIdentityRows(v)
	case [][]float64:
		return isIdentityRows(v)
	default:
		return false
	}
}

// ValidateRows ensures raw rows form a matrix.
// Returns ErrNotMatrix for empty or ragged input.
// Complexity: O(rows).
func ValidateRows(rows [][]int) error {
	if !isRectangular(rows) {
		return validatorErrorf("ValidateRows", ErrNotMatrix)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil and holds data.
// A zero-value Matrix (never produced by constructors, but left behind by
// e.g. a YAML null) yields ErrNotMatrix.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if len(m.rows) == 0 {
		return validatorErrorf("ValidateNotNil", ErrNotMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels.
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
