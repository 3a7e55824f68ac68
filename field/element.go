// SPDX-License-Identifier: MIT

// Package field: residue-class arithmetic.
//
// Element is the canonical representative of a residue class modulo the
// prime of its field: an int64 in [0, prime). Every constructor and every
// operation reduces immediately, so the bound is an invariant, not a
// convention. Elements are plain values: operations return fresh Elements
// and never mutate their receivers.
package field

import "fmt"

// Element is a residue modulo the prime of its field.
// Invariant: field != nil and 0 <= value < field.prime.
// The zero value of the type is invalid; construct via NewElement or
// Fp-aware helpers.
type Element struct {
	field *Fp
	value int64
}

// NewElement reduces value into f and returns the resulting residue.
// Any int64 is accepted; negative inputs wrap into [0, p) the mathematical
// way, not the truncated-division way.
// Errors: ErrNilField when f is nil.
// Complexity: O(1).
func NewElement(f *Fp, value int64) (Element, error) {
	if f == nil {
		return Element{}, fmt.Errorf("NewElement: %w", ErrNilField)
	}

	return Element{field: f, value: reduce(value, f.prime)}, nil
}

// MustElement is NewElement for statically known-good fields (tests,
// examples, package literals). Panics on a nil field.
func MustElement(f *Fp, value int64) Element {
	e, err := NewElement(f, value)
	if err != nil {
		panic(err)
	}

	return e
}

// reduce maps any int64 into the canonical range [0, p).
// Go's % keeps the dividend's sign, so one corrective add is needed.
func reduce(v, p int64) int64 {
	r := v % p
	if r < 0 {
		r += p
	}

	return r
}

// Field returns the descriptor the element belongs to.
// Complexity: O(1).
func (e Element) Field() *Fp { return e.field }

// Value returns the canonical representative in [0, prime).
// Complexity: O(1).
func (e Element) Value() int64 { return e.value }

// sameField verifies that both operands carry the same prime.
// Returns ErrNilField for unconstructed elements and ErrFieldMismatch for
// residues of different fields. All binary entry points funnel through it.
func (e Element) sameField(other Element, op string) error {
	if e.field == nil || other.field == nil {
		return fmt.Errorf("Element.%s: %w", op, ErrNilField)
	}
	if e.field.prime != other.field.prime {
		return fmt.Errorf("Element.%s: F%d vs F%d: %w",
			op, e.field.prime, other.field.prime, ErrFieldMismatch)
	}

	return nil
}

// Add returns e + other in the common field.
// Errors: ErrFieldMismatch when the primes differ.
// Complexity: O(1).
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField(other, "Add"); err != nil {
		return Element{}, err
	}

	return Element{field: e.field, value: reduce(e.value+other.value, e.field.prime)}, nil
}

// Sub returns e - other in the common field.
// Errors: ErrFieldMismatch when the primes differ.
// Complexity: O(1).
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField(other, "Sub"); err != nil {
		return Element{}, err
	}

	return Element{field: e.field, value: reduce(e.value-other.value, e.field.prime)}, nil
}

// Mul returns e * other in the common field.
// Errors: ErrFieldMismatch when the primes differ.
// Complexity: O(1). Exact for primes below 2^31 (product of two reduced
// values fits int64).
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField(other, "Mul"); err != nil {
		return Element{}, err
	}

	return Element{field: e.field, value: reduce(e.value*other.value, e.field.prime)}, nil
}

// AddInt coerces the bare integer into the element's own field and adds it.
// Complexity: O(1).
func (e Element) AddInt(n int64) Element {
	return Element{field: e.field, value: reduce(e.value+reduce(n, e.field.prime), e.field.prime)}
}

// SubInt coerces the bare integer into the element's own field and
// subtracts it.
// Complexity: O(1).
func (e Element) SubInt(n int64) Element {
	return Element{field: e.field, value: reduce(e.value-reduce(n, e.field.prime), e.field.prime)}
}

// MulInt coerces the bare integer into the element's own field and
// multiplies by it.
// Complexity: O(1).
func (e Element) MulInt(n int64) Element {
	return Element{field: e.field, value: reduce(e.value*reduce(n, e.field.prime), e.field.prime)}
}

// Neg returns the additive inverse.
// Complexity: O(1).
func (e Element) Neg() Element {
	return Element{field: e.field, value: reduce(-e.value, e.field.prime)}
}

// Pow returns e raised to a non-negative integer power, by square and
// multiply so that large exponents stay exact (no int64 overflow in the
// intermediate power, unlike naive value**n).
// Errors: ErrNegativeExponent for n < 0.
// Complexity: O(log n) multiplications.
func (e Element) Pow(n int) (Element, error) {
	if e.field == nil {
		return Element{}, fmt.Errorf("Element.Pow: %w", ErrNilField)
	}
	if n < 0 {
		return Element{}, fmt.Errorf("Element.Pow(%d): %w", n, ErrNegativeExponent)
	}

	p := e.field.prime
	result := int64(1) // e^0 == 1, also for the zero residue
	base := e.value
	for n > 0 {
		if n&1 == 1 {
			result = reduce(result*base, p)
		}
		base = reduce(base*base, p)
		n >>= 1
	}

	return Element{field: e.field, value: result}, nil
}

// Inv returns the multiplicative inverse via the extended Euclidean
// algorithm.
// Errors: ErrDivisionByZero for the zero residue.
// Complexity: O(log prime).
func (e Element) Inv() (Element, error) {
	if e.field == nil {
		return Element{}, fmt.Errorf("Element.Inv: %w", ErrNilField)
	}
	if e.value == 0 {
		return Element{}, fmt.Errorf("Element.Inv: %w", ErrDivisionByZero)
	}

	// Extended Euclid on (value, prime); gcd is 1 because prime is prime.
	t, newT := int64(0), int64(1)
	r, newR := e.field.prime, e.value
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	return Element{field: e.field, value: reduce(t, e.field.prime)}, nil
}

// Equal reports whether both elements denote the same residue of the same
// field.
// Complexity: O(1).
func (e Element) Equal(other Element) bool {
	return e.field.Equal(other.field) && e.value == other.value
}

// IsZero reports whether the element is the additive identity.
func (e Element) IsZero() bool { return e.value == 0 }

// IsOne reports whether the element is the multiplicative identity.
func (e Element) IsOne() bool { return e.value == 1 }

// String implements fmt.Stringer: "<value> mod <prime>".
func (e Element) String() string {
	return fmt.Sprintf("%d mod %d", e.value, e.field.prime)
}
