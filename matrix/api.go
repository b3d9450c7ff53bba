// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication: each facade delegates to exactly one kernel.
//
// AI-Hints:
//   - Use Adjugated when you want the classical adjugate (transpose of the
//     cofactor matrix) in one call; Adjugate alone is a plain transpose.

package matrix

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for MulMatrix: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return MulMatrix(a, b) }

// ScaleBy is an alias for MulScalar: k*m.
func ScaleBy(m *Matrix, k int) (*Matrix, error) { return MulScalar(m, k) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m *Matrix, opts ...Option) (int, error) { return Determinant(m, opts...) }

// InverseOf is an alias for Inverse.
func InverseOf(m *Matrix, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// Adjugated returns adj(m) = Cofactors(m)ᵀ for a square m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (from Cofactors).
func Adjugated(m *Matrix, opts ...Option) (*Matrix, error) {
	c, err := Cofactors(m, opts...)
	if err != nil {
		return nil, err
	}

	return Adjugate(c)
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Shape())
}
