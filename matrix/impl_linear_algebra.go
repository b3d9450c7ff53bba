// SPDX-License-Identifier: MIT
// Package matrix provides elementwise addition, subtraction, matrix and scalar
// multiplication, and transpose for the integer Matrix. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMulMatrix   = "MulMatrix"
	opMulScalar   = "MulScalar"
	opMultiply    = "Multiply"
	opMulDense    = "MulDense"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"

	opVerifyInverse = "VerifyInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign int, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Shape()
	out := allocRows(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i][j] = a.rows[i][j] + sign*b.rows[i][j]
		}
	}

	return newOwned(out), nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// MulMatrix performs the standard product C = A × B.
// Implementation:
//   - Stage 1: validate A,B non-nil and A.Cols == B.Rows.
//   - Stage 2: i→k→j loops over row slices, skipping zero A[i,k].
//
// Returns:
//   - *Matrix with shape A.Rows × B.Cols.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulMatrix(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMatrix, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	out := allocRows(aRows, bCols)
	var (
		i, j, k int
		av      int
		rowA    []int
		rowB    []int
		rowOut  []int
	)
	for i = 0; i < aRows; i++ {
		rowA = a.rows[i]
		rowOut = out[i]
		for k = 0; k < aCols; k++ {
			av = rowA[k]
			if av == 0 {
				continue
			}
			rowB = b.rows[k]
			for j = 0; j < bCols; j++ {
				rowOut[j] += av * rowB[j]
			}
		}
	}

	return newOwned(out), nil
}

// MulScalar returns k*m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MulScalar(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}

	rows, cols := m.Shape()
	out := allocRows(rows, cols)
	for i, row := range m.rows {
		for j, v := range row {
			out[i][j] = v * k
		}
	}

	return newOwned(out), nil
}

// Multiply dispatches on op: a matrix operand yields MulMatrix, a scalar
// operand yields MulScalar.
//
// Errors:
//   - ErrInvalidOperand for the zero Operand.
//   - Everything MulMatrix / MulScalar return.
func Multiply(a *Matrix, op Operand) (*Matrix, error) {
	switch op.kind {
	case operandMatrix:
		return MulMatrix(a, op.matrix)
	case operandScalar:
		return MulScalar(a, op.scalar)
	default:
		return nil, matrixErrorf(opMultiply, ErrInvalidOperand)
	}
}

// MulDense computes the mixed product C = A × B for an integer A and a
// float B, typically B = Inverse(A).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulDense(a *Matrix, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	if b == nil {
		return nil, matrixErrorf(opMulDense, ErrNilMatrix)
	}
	if a.Cols() != b.r {
		return nil, matrixErrorf(opMulDense, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	var (
		i, j, k   int
		av        float64
		baseB     int
		baseOut   int
		rowA      []int
		resBuffer = res.data
	)
	for i = 0; i < aRows; i++ {
		rowA = a.rows[i]
		baseOut = i * bCols
		for k = 0; k < aCols; k++ {
			if rowA[k] == 0 {
				continue
			}
			av = float64(rowA[k])
			baseB = k * bCols
			for j = 0; j < bCols; j++ {
				resBuffer[baseOut+j] += av * b.data[baseB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ (shape swapped) for any rectangular m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return newOwned(transposeRows(m.rows)), nil
}

// transposeRows is the allocation-and-copy core of Transpose. Assumes rows is rectangular.
func transposeRows(rows [][]int) [][]int {
	r, c := len(rows), len(rows[0])
	out := allocRows(c, r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[j][i] = rows[i][j]
		}
	}

	return out
}
