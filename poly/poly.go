// SPDX-License-Identifier: MIT

// Package poly: univariate polynomials over field.Scalar coefficients.
//
// A Polynomial stores its coefficients constant-term first, trimmed of
// trailing zeros at construction, with the all-zero polynomial kept as the
// single coefficient [0]. Construction also homogenizes the coefficient
// domain: if any coefficient is a field element, every raw coefficient is
// lifted into that field, and field coefficients of different primes are
// rejected. After New, a polynomial is either entirely raw or entirely over
// one Fp, which every later operation relies on.
package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primefield/field"
)

// Polynomial is an immutable univariate polynomial.
// Invariant: len(cs) >= 1; cs has no trailing zero beyond index 0; all
// coefficients share one domain (raw, or one common field held in fp).
// The zero value of the type is invalid; construct via New, FromInt64s or
// Over.
type Polynomial struct {
	cs []field.Scalar
	fp *field.Fp // common field of the coefficients; nil for raw
}

// New builds a polynomial from coefficients, constant term first.
// Stage 1 (Resolve): find the common field, reject mixed primes.
// Stage 2 (Lift): coerce raw coefficients into the common field, if any.
// Stage 3 (Normalize): trim trailing zeros, keep at least one coefficient.
// An empty argument list yields the zero polynomial [0].
// Errors: field.ErrFieldMismatch when coefficients carry different primes.
// Complexity: O(len(coeffs)).
func New(coeffs ...field.Scalar) (Polynomial, error) {
	// 1) Resolve the common field across all coefficients.
	var fp *field.Fp
	for _, c := range coeffs {
		if !c.IsField() {
			continue
		}
		if fp == nil {
			fp = c.Field()
			continue
		}
		if !fp.Equal(c.Field()) {
			return Polynomial{}, fmt.Errorf("New: F%d vs F%d: %w",
				fp.Prime(), c.Field().Prime(), field.ErrFieldMismatch)
		}
	}

	// 2) Copy, lifting raws into the common field when one exists.
	cs := make([]field.Scalar, len(coeffs))
	for i, c := range coeffs {
		if fp != nil {
			lifted, err := field.Lift(fp, c)
			if err != nil {
				return Polynomial{}, fmt.Errorf("New: %w", err)
			}
			c = lifted
		}
		cs[i] = c
	}

	// 3) Trim trailing zeros; never drop the constant slot.
	end := len(cs)
	for end > 1 && cs[end-1].IsZero() {
		end--
	}
	cs = cs[:end]
	if len(cs) == 0 {
		cs = []field.Scalar{zeroIn(fp)}
	}

	return Polynomial{cs: cs, fp: fp}, nil
}

// FromInt64s builds a raw-integer polynomial, constant term first.
// Complexity: O(len(vals)).
func FromInt64s(vals ...int64) Polynomial {
	cs := make([]field.Scalar, len(vals))
	for i, v := range vals {
		cs[i] = field.Raw(v)
	}
	p, _ := New(cs...) // raw coefficients cannot mismatch
	return p
}

// Over builds a polynomial with every coefficient reduced into f.
// Errors: field.ErrNilField.
// Complexity: O(len(vals)).
func Over(f *field.Fp, vals ...int64) (Polynomial, error) {
	if f == nil {
		return Polynomial{}, fmt.Errorf("Over: %w", field.ErrNilField)
	}
	cs := make([]field.Scalar, len(vals))
	for i, v := range vals {
		lifted, err := field.Lift(f, field.Raw(v))
		if err != nil {
			return Polynomial{}, fmt.Errorf("Over: %w", err)
		}
		cs[i] = lifted
	}

	return New(cs...)
}

// zeroIn returns the zero scalar of the given domain: a field zero that
// still remembers its Fp, or the raw 0.
func zeroIn(fp *field.Fp) field.Scalar {
	if fp == nil {
		return field.Raw(0)
	}
	s, _ := field.Lift(fp, field.Raw(0))

	return s
}

// Degree returns len(coefficients) - 1. The single read-only degree
// accessor used by every operation.
// Complexity: O(1).
func (p Polynomial) Degree() int { return len(p.cs) - 1 }

// Fp returns the common coefficient field, or nil for a raw polynomial.
// Carried even by the zero polynomial, so the field stays recoverable when
// every stored residue happens to be 0.
// Complexity: O(1).
func (p Polynomial) Fp() *field.Fp { return p.fp }

// Coefficient returns the coefficient of x^i, or the domain's zero beyond
// the degree.
// Complexity: O(1).
func (p Polynomial) Coefficient(i int) field.Scalar {
	if i < 0 || i >= len(p.cs) {
		return zeroIn(p.fp)
	}

	return p.cs[i]
}

// Coefficients returns a copy of the coefficient slice, constant term first.
// Complexity: O(degree).
func (p Polynomial) Coefficients() []field.Scalar {
	out := make([]field.Scalar, len(p.cs))
	copy(out, p.cs)

	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.cs) == 1 && p.cs[0].IsZero()
}

// Equal reports structural equality: same coefficient sequence in the same
// domain.
// Complexity: O(degree).
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.cs) != len(other.cs) {
		return false
	}
	for i := range p.cs {
		if !p.cs[i].Equal(other.cs[i]) {
			return false
		}
	}

	return true
}

// combine is the shared body of Add and Sub: zero-pad the shorter operand
// and apply op term-wise, renormalizing through New.
func (p Polynomial) combine(other Polynomial, op func(a, b field.Scalar) (field.Scalar, error), tag string) (Polynomial, error) {
	n := len(p.cs)
	if len(other.cs) > n {
		n = len(other.cs)
	}
	cs := make([]field.Scalar, n)
	for i := 0; i < n; i++ {
		c, err := op(p.Coefficient(i), other.Coefficient(i))
		if err != nil {
			return Polynomial{}, fmt.Errorf("Polynomial.%s: %w", tag, err)
		}
		cs[i] = c
	}

	return New(cs...)
}

// Add returns p + other, padding the shorter coefficient sequence with
// zeros.
// Errors: field.ErrFieldMismatch across different primes.
// Complexity: O(max degree).
func (p Polynomial) Add(other Polynomial) (Polynomial, error) {
	return p.combine(other, field.Add, "Add")
}

// Sub returns p - other.
// Errors: field.ErrFieldMismatch across different primes.
// Complexity: O(max degree).
func (p Polynomial) Sub(other Polynomial) (Polynomial, error) {
	return p.combine(other, field.Sub, "Sub")
}

// AddScalar returns p with s added to the constant term only.
// Errors: field.ErrFieldMismatch.
// Complexity: O(degree).
func (p Polynomial) AddScalar(s field.Scalar) (Polynomial, error) {
	cs := p.Coefficients()
	c0, err := field.Add(cs[0], s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("Polynomial.AddScalar: %w", err)
	}
	cs[0] = c0

	return New(cs...)
}

// SubScalar returns p with s subtracted from the constant term only.
// Errors: field.ErrFieldMismatch.
// Complexity: O(degree).
func (p Polynomial) SubScalar(s field.Scalar) (Polynomial, error) {
	cs := p.Coefficients()
	c0, err := field.Sub(cs[0], s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("Polynomial.SubScalar: %w", err)
	}
	cs[0] = c0

	return New(cs...)
}

// Scale returns p with every coefficient multiplied by s.
// Errors: field.ErrFieldMismatch.
// Complexity: O(degree).
func (p Polynomial) Scale(s field.Scalar) (Polynomial, error) {
	cs := make([]field.Scalar, len(p.cs))
	for i, c := range p.cs {
		sc, err := field.Mul(c, s)
		if err != nil {
			return Polynomial{}, fmt.Errorf("Polynomial.Scale: %w", err)
		}
		cs[i] = sc
	}

	return New(cs...)
}

// Mul returns the product polynomial: coefficient k of the result is the
// convolution sum over i+j == k.
// Errors: field.ErrFieldMismatch across different primes.
// Complexity: O(degree(p) * degree(other)).
func (p Polynomial) Mul(other Polynomial) (Polynomial, error) {
	deg := p.Degree() + other.Degree()
	cs := make([]field.Scalar, deg+1)
	for k := range cs {
		cs[k] = field.Raw(0)
	}
	for i := 0; i <= p.Degree(); i++ {
		for j := 0; j <= other.Degree(); j++ {
			prod, err := field.Mul(p.cs[i], other.cs[j])
			if err != nil {
				return Polynomial{}, fmt.Errorf("Polynomial.Mul: %w", err)
			}
			acc, err := field.Add(cs[i+j], prod)
			if err != nil {
				return Polynomial{}, fmt.Errorf("Polynomial.Mul: %w", err)
			}
			cs[i+j] = acc
		}
	}

	return New(cs...)
}

// Pow returns p raised to a non-negative integer power by repeated
// multiplication. Pow(0) is the constant polynomial 1 (in p's coefficient
// domain), the multiplicative identity.
// Errors: field.ErrNegativeExponent for n < 0.
// Complexity: O(n * degree^2) coefficient multiplications.
func (p Polynomial) Pow(n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("Polynomial.Pow(%d): %w", n, field.ErrNegativeExponent)
	}
	if n == 0 {
		one, err := field.Add(zeroIn(p.fp), field.Raw(1))
		if err != nil {
			return Polynomial{}, fmt.Errorf("Polynomial.Pow: %w", err)
		}

		return New(one)
	}

	result := p
	for i := 1; i < n; i++ {
		next, err := result.Mul(p)
		if err != nil {
			return Polynomial{}, err
		}
		result = next
	}

	return result, nil
}

// Eval evaluates p at x by Horner's rule:
// (((c_d)·x + c_{d-1})·x + ...)·x + c_0.
// Errors: field.ErrFieldMismatch when x and the coefficients disagree.
// Complexity: O(degree).
func (p Polynomial) Eval(x field.Scalar) (field.Scalar, error) {
	acc := zeroIn(p.fp)
	for i := p.Degree(); i >= 0; i-- {
		prod, err := field.Mul(acc, x)
		if err != nil {
			return field.Scalar{}, fmt.Errorf("Polynomial.Eval: %w", err)
		}
		acc, err = field.Add(prod, p.cs[i])
		if err != nil {
			return field.Scalar{}, fmt.Errorf("Polynomial.Eval: %w", err)
		}
	}

	return acc, nil
}

// Derivative returns dp/dx: coefficient i-1 of the result is c_i * i.
// A constant polynomial differentiates to the zero polynomial of the same
// coefficient domain.
// Complexity: O(degree).
func (p Polynomial) Derivative() (Polynomial, error) {
	if p.Degree() < 1 {
		return New(zeroIn(p.fp))
	}
	cs := make([]field.Scalar, p.Degree())
	for i := 1; i <= p.Degree(); i++ {
		c, err := field.Mul(p.cs[i], field.Raw(int64(i)))
		if err != nil {
			return Polynomial{}, fmt.Errorf("Polynomial.Derivative: %w", err)
		}
		cs[i-1] = c
	}

	return New(cs...)
}

// Derivative is the free-function mirror of Polynomial.Derivative.
func Derivative(p Polynomial) (Polynomial, error) { return p.Derivative() }

// String renders the polynomial as a descending sum of terms: zero
// coefficients are omitted, a unit coefficient is omitted on non-constant
// terms, degree 1 renders as "x" and degree d >= 2 as "x^d". The empty sum
// (zero polynomial) renders as "0".
func (p Polynomial) String() string {
	var terms []string
	for d := p.Degree(); d >= 0; d-- {
		c := p.cs[d]
		if c.IsZero() {
			continue
		}
		switch {
		case d == 0:
			terms = append(terms, c.String())
		case d == 1 && c.IsOne():
			terms = append(terms, "x")
		case d == 1:
			terms = append(terms, c.String()+"x")
		case c.IsOne():
			terms = append(terms, fmt.Sprintf("x^%d", d))
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", c, d))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}
