// SPDX-License-Identifier: MIT

// Package field: the Scalar tagged union.
//
// Polynomials and matrices store scalars that are either plain integers or
// residues of some Fp. Scalar makes that choice explicit: a raw variant
// holding an int64, or a field variant holding an Element. All mixed-mode
// arithmetic funnels through a single coercion helper (unify), so the
// lifting rules live in exactly one place:
//
//   - raw ∘ raw     → raw integer arithmetic,
//   - field ∘ field → field arithmetic, primes must agree,
//   - raw ∘ field   → the raw side is lifted into the field side's Fp.
//
// A field-variant Scalar always carries its *Fp, even when the stored
// residue is zero, so the field of a structure is recoverable from any of
// its cells.
package field

import (
	"fmt"
	"strconv"
)

// Scalar is either a bare int64 or a field Element.
// The zero value is the raw integer 0, which is a valid scalar.
type Scalar struct {
	elem    Element // meaningful only when fielded
	raw     int64   // meaningful only when !fielded
	fielded bool
}

// Raw wraps a bare integer as a Scalar.
// Complexity: O(1).
func Raw(v int64) Scalar {
	return Scalar{raw: v}
}

// FromElement wraps a field element as a Scalar.
// Complexity: O(1).
func FromElement(e Element) Scalar {
	return Scalar{elem: e, fielded: true}
}

// IsField reports whether the scalar is the field variant.
func (s Scalar) IsField() bool { return s.fielded }

// Field returns the scalar's field descriptor, or nil for the raw variant.
func (s Scalar) Field() *Fp {
	if !s.fielded {
		return nil
	}

	return s.elem.Field()
}

// Elem returns the underlying Element. Meaningful only when IsField().
func (s Scalar) Elem() Element { return s.elem }

// Int64 returns the scalar's numeric value: the raw integer, or the
// canonical representative of the residue.
// Complexity: O(1).
func (s Scalar) Int64() int64 {
	if s.fielded {
		return s.elem.Value()
	}

	return s.raw
}

// IsZero reports whether the scalar is an additive identity.
func (s Scalar) IsZero() bool { return s.Int64() == 0 }

// IsOne reports whether the scalar is a multiplicative identity.
func (s Scalar) IsOne() bool { return s.Int64() == 1 }

// Equal reports structural equality: same variant, same field (if any),
// same value.
// Complexity: O(1).
func (s Scalar) Equal(other Scalar) bool {
	if s.fielded != other.fielded {
		return false
	}
	if s.fielded {
		return s.elem.Equal(other.elem)
	}

	return s.raw == other.raw
}

// String implements fmt.Stringer, rendering just the numeric value. This is
// the cell representation used inside matrix and polynomial text output; the
// long "<value> mod <prime>" form stays on Element.
func (s Scalar) String() string {
	return strconv.FormatInt(s.Int64(), 10)
}

// unify is THE coercion point: it brings two scalars into a common domain
// and reports ErrFieldMismatch when both are fielded over different primes.
// Every binary Scalar operation calls it first; none re-implements lifting.
// Complexity: O(1).
func unify(a, b Scalar, op string) (Scalar, Scalar, error) {
	if (a.fielded && a.elem.field == nil) || (b.fielded && b.elem.field == nil) {
		return Scalar{}, Scalar{}, fmt.Errorf("%s: %w", op, ErrNilField)
	}
	switch {
	case a.fielded && b.fielded:
		if !a.elem.Field().Equal(b.elem.Field()) {
			return Scalar{}, Scalar{}, fmt.Errorf("%s: F%d vs F%d: %w",
				op, a.elem.Field().Prime(), b.elem.Field().Prime(), ErrFieldMismatch)
		}
	case a.fielded: // lift raw b into a's field
		b = Scalar{elem: Element{field: a.elem.field, value: reduce(b.raw, a.elem.field.prime)}, fielded: true}
	case b.fielded: // lift raw a into b's field
		a = Scalar{elem: Element{field: b.elem.field, value: reduce(a.raw, b.elem.field.prime)}, fielded: true}
	}

	return a, b, nil
}

// Add returns a + b, lifting mixed operands through unify.
// Errors: ErrFieldMismatch for residues of different primes.
// Complexity: O(1).
func Add(a, b Scalar) (Scalar, error) {
	a, b, err := unify(a, b, "Add")
	if err != nil {
		return Scalar{}, err
	}
	if a.fielded {
		e, aerr := a.elem.Add(b.elem)
		if aerr != nil {
			return Scalar{}, aerr
		}

		return FromElement(e), nil
	}

	return Raw(a.raw + b.raw), nil
}

// Sub returns a - b, lifting mixed operands through unify.
// Errors: ErrFieldMismatch for residues of different primes.
// Complexity: O(1).
func Sub(a, b Scalar) (Scalar, error) {
	a, b, err := unify(a, b, "Sub")
	if err != nil {
		return Scalar{}, err
	}
	if a.fielded {
		e, serr := a.elem.Sub(b.elem)
		if serr != nil {
			return Scalar{}, serr
		}

		return FromElement(e), nil
	}

	return Raw(a.raw - b.raw), nil
}

// Mul returns a * b, lifting mixed operands through unify.
// Errors: ErrFieldMismatch for residues of different primes.
// Complexity: O(1).
func Mul(a, b Scalar) (Scalar, error) {
	a, b, err := unify(a, b, "Mul")
	if err != nil {
		return Scalar{}, err
	}
	if a.fielded {
		e, merr := a.elem.Mul(b.elem)
		if merr != nil {
			return Scalar{}, merr
		}

		return FromElement(e), nil
	}

	return Raw(a.raw * b.raw), nil
}

// Div returns a / b.
// Field variant: multiplication by the inverse of b.
// Raw variant: exact integer division only; a remainder is an error, since
// plain integers form a ring, not a field.
// Errors: ErrFieldMismatch, ErrDivisionByZero, ErrInexactDivision.
// Complexity: O(log prime) fielded, O(1) raw.
func Div(a, b Scalar) (Scalar, error) {
	a, b, err := unify(a, b, "Div")
	if err != nil {
		return Scalar{}, err
	}
	if a.fielded {
		inv, ierr := b.elem.Inv()
		if ierr != nil {
			return Scalar{}, ierr
		}
		e, merr := a.elem.Mul(inv)
		if merr != nil {
			return Scalar{}, merr
		}

		return FromElement(e), nil
	}

	if b.raw == 0 {
		return Scalar{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}
	if a.raw%b.raw != 0 {
		return Scalar{}, fmt.Errorf("Div(%d, %d): %w", a.raw, b.raw, ErrInexactDivision)
	}

	return Raw(a.raw / b.raw), nil
}

// Neg returns the additive inverse of a.
// Complexity: O(1).
func Neg(a Scalar) Scalar {
	if a.fielded {
		return FromElement(a.elem.Neg())
	}

	return Raw(-a.raw)
}

// Pow returns a raised to a non-negative integer power.
// Errors: ErrNegativeExponent for n < 0.
// Complexity: O(log n) fielded, O(n) raw multiplications.
func Pow(a Scalar, n int) (Scalar, error) {
	if n < 0 {
		return Scalar{}, fmt.Errorf("Pow(%d): %w", n, ErrNegativeExponent)
	}
	if a.fielded {
		e, err := a.elem.Pow(n)
		if err != nil {
			return Scalar{}, err
		}

		return FromElement(e), nil
	}

	// Raw powers stay exact only while they fit int64; callers keep inputs
	// small, matching the engine's scope.
	result := int64(1)
	for i := 0; i < n; i++ {
		result *= a.raw
	}

	return Raw(result), nil
}

// Lift coerces a scalar into f: raw values are reduced into the field, a
// field value must already belong to f.
// Errors: ErrNilField; ErrFieldMismatch when the scalar carries a different
// prime (re-homing a residue is never done silently).
// Complexity: O(1).
func Lift(f *Fp, s Scalar) (Scalar, error) {
	if f == nil {
		return Scalar{}, fmt.Errorf("Lift: %w", ErrNilField)
	}
	if s.fielded {
		if !s.elem.Field().Equal(f) {
			return Scalar{}, fmt.Errorf("Lift: F%d into F%d: %w",
				s.elem.Field().Prime(), f.Prime(), ErrFieldMismatch)
		}

		return s, nil
	}

	return Scalar{elem: Element{field: f, value: reduce(s.raw, f.prime)}, fielded: true}, nil
}
