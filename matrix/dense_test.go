package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/matrix"
)

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseAtSetOutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = d.At(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDenseSetRowAndClone(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.SetRow(1, []float64{1, 2, 3}))

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, row)

	clone := d.Clone()
	require.NoError(t, clone.Set(1, 0, 99))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not affect the original")
}

func TestDenseSetRowLengthMismatch(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Error(t, d.SetRow(0, []float64{1, 2}))
}
