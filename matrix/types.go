// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types: the integer Matrix and the
// Operand tagged union consumed by Multiply. Storage behavior lives in
// impl_matrix.go and impl_dense.go; errors and options live in dedicated files.
package matrix

// Matrix is a rectangular grid of integers stored row by row.
//
// Invariants:
//   - at least one row and one column;
//   - every row has the same length;
//   - values are never mutated by operations. Replace is the only in-place
//     method and it swaps the whole representation atomically.
//
// Shape is derived from the rows on every call and never cached.
type Matrix struct {
	rows [][]int // row-major, rectangular, owned exclusively by this value
}

// operandKind tags the active member of Operand.
type operandKind uint8

const (
	operandNone   operandKind = iota // zero value: no operand supplied
	operandMatrix                    // right-hand matrix product
	operandScalar                    // scalar product
)

// Operand is the right-hand side of Multiply: either a matrix or an integer scalar.
// Build it with MatrixOperand or ScalarOperand; the zero value is invalid.
type Operand struct {
	kind   operandKind
	matrix *Matrix
	scalar int
}

// MatrixOperand wraps m as the right-hand side of a matrix product.
func MatrixOperand(m *Matrix) Operand { return Operand{kind: operandMatrix, matrix: m} }

// ScalarOperand wraps k as a scalar multiplier.
func ScalarOperand(k int) Operand { return Operand{kind: operandScalar, scalar: k} }

// IsMatrix reports whether the operand carries a matrix.
func (o Operand) IsMatrix() bool { return o.kind == operandMatrix }

// IsScalar reports whether the operand carries a scalar.
func (o Operand) IsScalar() bool { return o.kind == operandScalar }
