// Package field_test contains unit tests for the Scalar tagged union: the
// single coercion path, mixed raw/field arithmetic, division semantics and
// lifting.
package field_test

import (
	"testing"

	"github.com/katalvlaran/primefield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalar_RawArithmetic checks that two raw scalars stay in plain
// integer arithmetic.
func TestScalar_RawArithmetic(t *testing.T) {
	a, b := field.Raw(7), field.Raw(-3)

	sum, err := field.Add(a, b)
	require.NoError(t, err)
	assert.False(t, sum.IsField())
	assert.Equal(t, int64(4), sum.Int64())

	diff, err := field.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(10), diff.Int64())

	prod, err := field.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(-21), prod.Int64(), "raw scalars are not reduced")
}

// TestScalar_MixedCoercion checks that a raw operand is lifted into the
// field side, on either side of the operator.
func TestScalar_MixedCoercion(t *testing.T) {
	f5, _ := field.New(5)
	e := field.FromElement(field.MustElement(f5, 3))

	left, err := field.Add(e, field.Raw(4))
	require.NoError(t, err)
	assert.True(t, left.IsField())
	assert.Equal(t, int64(2), left.Int64(), "3+4 mod 5")

	right, err := field.Add(field.Raw(4), e)
	require.NoError(t, err)
	assert.True(t, right.IsField())
	assert.Equal(t, int64(2), right.Int64(), "coercion is symmetric")

	neg, err := field.Mul(field.Raw(-1), e)
	require.NoError(t, err)
	assert.Equal(t, int64(2), neg.Int64(), "-3 mod 5")
}

// TestScalar_FieldMismatch checks that fielded scalars of different primes
// never combine.
func TestScalar_FieldMismatch(t *testing.T) {
	f2, _ := field.New(2)
	f3, _ := field.New(3)
	a := field.FromElement(field.MustElement(f2, 1))
	b := field.FromElement(field.MustElement(f3, 1))

	for name, op := range map[string]func(x, y field.Scalar) (field.Scalar, error){
		"Add": field.Add, "Sub": field.Sub, "Mul": field.Mul, "Div": field.Div,
	} {
		_, err := op(a, b)
		assert.ErrorIsf(t, err, field.ErrFieldMismatch, "%s must reject F2 vs F3", name)
	}
}

// TestScalar_Div covers both division regimes: inverse-multiply in a field,
// exact-only over raw integers.
func TestScalar_Div(t *testing.T) {
	f7, _ := field.New(7)
	a := field.FromElement(field.MustElement(f7, 3))
	b := field.FromElement(field.MustElement(f7, 5))

	q, err := field.Div(a, b)
	require.NoError(t, err)
	back, err := field.Mul(q, b)
	require.NoError(t, err)
	assert.Equal(t, int64(3), back.Int64(), "q*b must reproduce a")

	exact, err := field.Div(field.Raw(-12), field.Raw(4))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), exact.Int64())

	_, err = field.Div(field.Raw(7), field.Raw(2))
	assert.ErrorIs(t, err, field.ErrInexactDivision)

	_, err = field.Div(field.Raw(7), field.Raw(0))
	assert.ErrorIs(t, err, field.ErrDivisionByZero)

	zero := field.FromElement(field.MustElement(f7, 0))
	_, err = field.Div(a, zero)
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// TestScalar_PowNeg covers Pow in both regimes plus Neg.
func TestScalar_PowNeg(t *testing.T) {
	cube, err := field.Pow(field.Raw(-2), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(-8), cube.Int64())

	one, err := field.Pow(field.Raw(0), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), one.Int64(), "0^0 follows the identity convention")

	f5, _ := field.New(5)
	e := field.FromElement(field.MustElement(f5, 2))
	p4, err := field.Pow(e, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p4.Int64(), "2^4 mod 5")

	_, err = field.Pow(e, -2)
	assert.ErrorIs(t, err, field.ErrNegativeExponent)

	assert.Equal(t, int64(3), field.Neg(e).Int64())
	assert.Equal(t, int64(-2), field.Neg(field.Raw(2)).Int64())
}

// TestScalar_Lift verifies reduction of raws into a field and the refusal
// to re-home a residue of another prime.
func TestScalar_Lift(t *testing.T) {
	f5, _ := field.New(5)

	lifted, err := field.Lift(f5, field.Raw(-3))
	require.NoError(t, err)
	assert.True(t, lifted.IsField())
	assert.Equal(t, int64(2), lifted.Int64())

	// Lifting a residue into its own field is the identity.
	again, err := field.Lift(f5, lifted)
	require.NoError(t, err)
	assert.True(t, again.Equal(lifted))

	f7, _ := field.New(7)
	_, err = field.Lift(f7, lifted)
	assert.ErrorIs(t, err, field.ErrFieldMismatch, "residues are never reinterpreted in another field")

	_, err = field.Lift(nil, field.Raw(1))
	assert.ErrorIs(t, err, field.ErrNilField)
}

// TestScalar_ZeroKeepsField: the property the companion builder depends on.
// A zero residue still knows its field.
func TestScalar_ZeroKeepsField(t *testing.T) {
	f3, _ := field.New(3)
	z, err := field.Lift(f3, field.Raw(0))
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	require.NotNil(t, z.Field())
	assert.Equal(t, int64(3), z.Field().Prime())
}

// TestScalar_StringEqual covers the short value rendering and structural
// equality across variants.
func TestScalar_StringEqual(t *testing.T) {
	f5, _ := field.New(5)
	e := field.FromElement(field.MustElement(f5, 3))

	assert.Equal(t, "3", e.String(), "cells render as bare values")
	assert.Equal(t, "-4", field.Raw(-4).String())

	assert.False(t, e.Equal(field.Raw(3)), "raw 3 and 3 mod 5 are distinct scalars")
	assert.True(t, field.Raw(3).Equal(field.Raw(3)))
}
