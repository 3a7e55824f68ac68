// Package matrix_test contains unit tests for construction, field
// resolution, accessors and rendering of Matrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/primefield/field"
	"github.com/katalvlaran/primefield/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ShapeValidation verifies that empty, ragged and rectangular
// grids are rejected.
func TestNew_ShapeValidation(t *testing.T) {
	_, err := matrix.New(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "empty grid")

	_, err = matrix.FromInt64s([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "ragged grid")

	_, err = matrix.FromInt64s([][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "rectangular grid")
}

// TestNew_RawMatrix verifies that an all-raw grid stays unfielded.
func TestNew_RawMatrix(t *testing.T) {
	m, err := matrix.FromInt64s([][]int64{{1, -2}, {3, 4}})
	require.NoError(t, err)
	assert.Nil(t, m.Fp())
	c, err := m.At(0, 1)
	require.NoError(t, err)
	assert.False(t, c.IsField())
	assert.Equal(t, int64(-2), c.Int64(), "raw cells are not reduced")
}

// TestLift_ReducesCells verifies reduction of every cell into the field.
func TestLift_ReducesCells(t *testing.T) {
	f5, _ := field.New(5)
	m, err := matrix.Lift(f5, [][]int64{{7, -1}, {0, 5}})
	require.NoError(t, err)
	require.NotNil(t, m.Fp())
	assert.Equal(t, int64(5), m.Fp().Prime())

	want := [][]int64{{2, 4}, {0, 0}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c, aerr := m.At(i, j)
			require.NoError(t, aerr)
			assert.True(t, c.IsField())
			assert.Equal(t, want[i][j], c.Int64())
		}
	}

	_, err = matrix.Lift(nil, [][]int64{{1}})
	assert.ErrorIs(t, err, field.ErrNilField)
}

// TestNew_FieldInference verifies that with no explicit field, the common
// field of the cells is adopted and raw cells are lifted into it.
func TestNew_FieldInference(t *testing.T) {
	f3, _ := field.New(3)
	e := field.FromElement(field.MustElement(f3, 2))

	m, err := matrix.New(nil, [][]field.Scalar{
		{e, field.Raw(4)},
		{field.Raw(0), e},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Fp())
	assert.Equal(t, int64(3), m.Fp().Prime())
	c, _ := m.At(0, 1)
	assert.Equal(t, int64(1), c.Int64(), "raw 4 lifted mod 3")
}

// TestNew_NoSilentRehoming: a cell residing in another prime than the
// requested (or inferred) field is an error, never a reinterpretation.
func TestNew_NoSilentRehoming(t *testing.T) {
	f2, _ := field.New(2)
	f3, _ := field.New(3)
	alien := field.FromElement(field.MustElement(f3, 1))

	_, err := matrix.New(f2, [][]field.Scalar{
		{alien, field.Raw(0)},
		{field.Raw(0), field.Raw(1)},
	})
	assert.ErrorIs(t, err, field.ErrFieldMismatch)

	e2 := field.FromElement(field.MustElement(f2, 1))
	_, err = matrix.New(nil, [][]field.Scalar{
		{e2, alien},
		{field.Raw(0), field.Raw(0)},
	})
	assert.ErrorIs(t, err, field.ErrFieldMismatch, "inference must reject mixed primes too")
}

// TestIdentityZero verifies the stock matrices, raw and fielded.
func TestIdentityZero(t *testing.T) {
	id, err := matrix.Identity(3, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c, _ := id.At(i, j)
			if i == j {
				assert.True(t, c.IsOne())
			} else {
				assert.True(t, c.IsZero())
			}
		}
	}

	f2, _ := field.New(2)
	z, err := matrix.Zero(2, f2)
	require.NoError(t, err)
	require.NotNil(t, z.Fp())
	c, _ := z.At(1, 1)
	assert.True(t, c.IsField() && c.IsZero())

	_, err = matrix.Identity(0, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
	_, err = matrix.Zero(-1, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
}

// TestMatrix_AtRowBounds verifies the out-of-range guards and the
// defensive row copy.
func TestMatrix_AtRowBounds(t *testing.T) {
	m, _ := matrix.FromInt64s([][]int64{{1, 2}, {3, 4}})

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = field.Raw(99)
	c, _ := m.At(1, 0)
	assert.Equal(t, int64(3), c.Int64(), "Row returns a copy")
}

// TestMatrix_Equal covers size, field and cell comparisons.
func TestMatrix_Equal(t *testing.T) {
	a, _ := matrix.FromInt64s([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.FromInt64s([][]int64{{1, 2}, {3, 4}})
	c, _ := matrix.FromInt64s([][]int64{{1, 2}, {3, 5}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	f5, _ := field.New(5)
	lifted, _ := matrix.Lift(f5, [][]int64{{1, 2}, {3, 4}})
	assert.False(t, a.Equal(lifted), "raw and fielded matrices are distinct")

	var nilM *matrix.Matrix
	assert.False(t, a.Equal(nil))
	assert.True(t, nilM.Equal(nil))
}

// TestMatrix_String verifies the bracketed row rendering.
func TestMatrix_String(t *testing.T) {
	m, _ := matrix.FromInt64s([][]int64{{0, -1}, {1, -1}})
	assert.Equal(t, "[[0, -1]\n [1, -1]]", m.String())

	one, _ := matrix.FromInt64s([][]int64{{7}})
	assert.Equal(t, "[[7]]", one.String())
}
