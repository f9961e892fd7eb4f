package matrix_test

import (
	"math"
	"testing"

	"github.com/mtreyden/armature/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation rejects non-positive shapes.
func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

// TestDense_AtSet covers element access and bounds behavior.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Zero(t, v, "unset elements are zero")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_CloneIsIndependent verifies deep copy semantics.
func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe the original's writes")
}

// TestNewIdentity checks the diagonal construction.
func TestNewIdentity(t *testing.T) {
	ident, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := ident.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

// TestFromRows covers construction and ragged rejection.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.FromRows([][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFromColumnMajor transposes the element order into row-major storage.
func TestFromColumnMajor(t *testing.T) {
	// Columns (1,2,3) and (4,5,6) of a 3×2 matrix.
	m, err := matrix.FromColumnMajor([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.Data())

	_, err = matrix.FromColumnMajor([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromColumnMajor(nil, 0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_String formats rows top to bottom.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3.5, 4}})
	require.NoError(t, err)

	assert.Equal(t, "1 2\n3.5 4\n", m.String())
}
