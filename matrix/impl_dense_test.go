// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_DefaultZero(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := d.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, d.Data())

	_, err = matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 0, 2.5))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	require.ErrorIs(t, d.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = d.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, d.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	cp := d.Clone()
	require.NoError(t, cp.Set(0, 0, 9))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[[1, 2], [3, 4]]", d.String())

	_, err = matrix.NewDenseFromRows([][]float64{{1}, {}})
	require.ErrorIs(t, err, matrix.ErrNotMatrix)
}

func TestDense_IsIdentityWithin(t *testing.T) {
	t.Parallel()

	near, err := matrix.NewDenseFromRows([][]float64{{1.0004, -0.0003}, {0.0001, 0.9999}})
	require.NoError(t, err)

	ok, err := near.IsIdentityWithin(1e-3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = near.IsIdentityWithin(1e-4)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, matrix.IsIdentity(near))

	wide, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	ok, err = wide.IsIdentityWithin(1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = near.IsIdentityWithin(math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	var nilD *matrix.Dense
	_, err = nilD.IsIdentityWithin(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
