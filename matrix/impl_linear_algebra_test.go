// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for elementwise and product kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub_Values(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustMatrix(t, [][]int{{10, -2, 0}, {1, 1, -7}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{11, 0, 3}, {5, 6, -1}}, sum.Data())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-9, 4, 3}, {3, 4, 13}}, diff.Data())

	// Operands are never mutated.
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a.Data())
}

func TestAddSub_InverseProperty(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		r, c := 1+int(seed%4), 1+int(seed%3)
		a := RandomMatrix(t, r, c, seed, -50, 50)
		b := RandomMatrix(t, r, c, seed*31, -50, 50)

		s, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(s, b)
		require.NoError(t, err)
		require.True(t, back.Equal(a), "seed=%d: (A+B)-B != A", seed)
	}
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	wide := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tall := MustMatrix(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	for _, op := range []struct {
		name string
		fn   func(a, b *matrix.Matrix) (*matrix.Matrix, error)
	}{{"Add", matrix.Add}, {"Sub", matrix.Sub}} {
		_, err := op.fn(a, wide)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, op.name)
		_, err = op.fn(a, tall)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, op.name)
		_, err = op.fn(a, nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, op.name)
		_, err = op.fn(nil, a)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, op.name)
	}
}

func TestMulMatrix(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := MustMatrix(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.MulMatrix(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{58, 64}, {139, 154}}, p.Data())

	// Non-square conformable shapes beyond the a.Rows == b.Cols case.
	col := MustMatrix(t, [][]int{{1}, {0}, {-1}}) // 3x1
	p, err = matrix.MulMatrix(a, col)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-2}, {-2}}, p.Data())

	_, err = matrix.MulMatrix(b, col)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulMatrix(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulMatrix_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{1, 1}, {2, 3}, {4, 4}, {5, 2}} {
		r, c := shape[0], shape[1]
		t.Run(fmt.Sprintf("%dx%d", r, c), func(t *testing.T) {
			a := RandomMatrix(t, r, c, int64(r*10+c), -9, 9)
			got, err := matrix.MulMatrix(a, MustIdentity(t, c))
			require.NoError(t, err)
			require.True(t, got.Equal(a))

			got, err = matrix.MulMatrix(MustIdentity(t, r), a)
			require.NoError(t, err)
			require.True(t, got.Equal(a))
		})
	}
}

func TestMulScalarAndMultiply(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, -2}, {0, 3}})

	s, err := matrix.MulScalar(a, -3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-3, 6}, {0, -9}}, s.Data())

	viaOp, err := matrix.Multiply(a, matrix.ScalarOperand(-3))
	require.NoError(t, err)
	assert.True(t, viaOp.Equal(s))

	sq, err := matrix.Multiply(a, matrix.MatrixOperand(a))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -8}, {0, 9}}, sq.Data())

	_, err = matrix.Multiply(a, matrix.Operand{})
	require.ErrorIs(t, err, matrix.ErrInvalidOperand)
	_, err = matrix.Multiply(a, matrix.MatrixOperand(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulScalar(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.True(t, matrix.ScalarOperand(0).IsScalar())
	assert.True(t, matrix.MatrixOperand(a).IsMatrix())
	assert.False(t, matrix.Operand{}.IsMatrix() || matrix.Operand{}.IsScalar())
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.Data())

	back, err := matrix.T(tr)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulDense(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	b, err := matrix.NewDenseFromRows([][]float64{{0.5, 0}, {0, 0.25}})
	require.NoError(t, err)

	p, err := matrix.MulDense(a, b)
	require.NoError(t, err)
	RequireDenseEqual(t, [][]float64{{0.5, 0.5}, {1.5, 1}}, p)

	wide, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	_, err = matrix.MulDense(a, wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulDense(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulDense(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFacades(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{2, 1}, {1, 1}})

	s, err := matrix.Sum(a, a)
	require.NoError(t, err)
	d, err := matrix.Diff(s, a)
	require.NoError(t, err)
	assert.True(t, d.Equal(a))

	p, err := matrix.Product(a, a)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 3}, {3, 2}}, p.Data())

	k, err := matrix.ScaleBy(a, 2)
	require.NoError(t, err)
	assert.True(t, k.Equal(s))

	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	assert.True(t, matrix.IsIdentity(id))

	z, err := matrix.ZerosLike(MustMatrix(t, [][]int{{1, 2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}}, z.Data())

	_, err = matrix.IdentityLike(MustMatrix(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
