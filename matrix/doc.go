// Package matrix is a small dense integer-matrix library whose centrepiece is
// the textbook determinant → cofactor → adjugate → inverse chain.
//
// The matrix package provides:
//
//   - Matrix, an immutable-by-convention rectangular grid of ints, built with
//     New (from rows) or FromFlat (from a row-major slice plus dimensions).
//   - Shape predicates IsMatrix / IsIdentity and error-returning validators.
//   - Add, Sub, MulMatrix, MulScalar and the Operand-based Multiply.
//   - Minor extraction: DeleteRowAndColumn and FirstRowMinor.
//   - Determinant by Laplace expansion along the first row (O(n!)).
//   - Cofactors, Adjugate (transpose) and Inverse, whose float64 cells are
//     rounded to three decimals by default (see WithPrecision), plus
//     VerifyInverse and AllClose for tolerance-based checks.
//   - Parse / Format and YAML (gopkg.in/yaml.v3) codecs.
//
// Every failure is reported as a wrapped sentinel from errors.go: callers
// test causes with errors.Is (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ErrInvalidDimensions, ErrParse, ...). No operation returns an
// "empty" matrix to signal failure.
//
// Matrices are best kept small: cofactor expansion is exponential and makes
// no attempt at pivoting or numerical stabilization.
package matrix
