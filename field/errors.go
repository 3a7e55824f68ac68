// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the field
// package and re-used by poly, matrix and builder for field-related failures.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package field

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "field: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary. Callers will still use errors.Is to match.

var (
	// ErrNotPrime is returned by New when the requested modulus fails the
	// primality test. A field of non-prime order is never constructed.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrNonPositive is returned by New when the requested modulus is < 2.
	// Validated before the primality oracle is consulted.
	ErrNonPositive = errors.New("field: modulus must be at least 2")

	// ErrNilField indicates that a nil *Fp was supplied where a field
	// descriptor is required (element construction, lifting).
	ErrNilField = errors.New("field: nil field descriptor")

	// ErrFieldMismatch indicates an attempt to combine residues (or
	// structures holding residues) whose fields carry different primes.
	// Shared sentinel: poly, matrix and builder return it too.
	ErrFieldMismatch = errors.New("field: operands belong to different fields")

	// ErrNegativeExponent indicates a negative exponent passed to Pow.
	// Negative powers are intentionally unsupported across the module.
	ErrNegativeExponent = errors.New("field: exponent must be non-negative")

	// ErrDivisionByZero indicates inversion or division by a zero scalar.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrInexactDivision indicates integer (unfielded) scalar division with
	// a non-zero remainder. Raw scalars live in a ring, not a field, so
	// only exact quotients are representable.
	ErrInexactDivision = errors.New("field: inexact integer division")
)
