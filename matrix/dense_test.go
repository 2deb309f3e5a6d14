package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/matrix"
)

func TestNewDense(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.Nil(t, m.Row(5))
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, m.Row(1))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}
