// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical Option
// arguments (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Kernels wrap sentinels with matrixErrorf("<Op>", err); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> not a matrix -> shape (square / dimension mismatch) -> index -> numeric (singular).

var (
	// ErrNotMatrix is returned when raw rows are empty, start with an empty
	// row, or are ragged (rows of different lengths). A zero-value Matrix
	// passed to any kernel also yields it.
	ErrNotMatrix = errors.New("matrix: not a matrix (empty or ragged rows)")

	// ErrNilMatrix indicates that a nil *Matrix or *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates requested dimensions are non-positive or
	// inconsistent with the supplied data.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidOperand is returned by Multiply for a zero-value Operand.
	ErrInvalidOperand = errors.New("matrix: invalid multiplication operand")

	// ErrParse signals textual or YAML input that is not a grid of integers.
	ErrParse = errors.New("matrix: cannot parse integers")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to approximate comparisons.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
