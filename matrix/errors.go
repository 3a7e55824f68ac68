// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels (or the shared
// field sentinels) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// Field-related failures (different primes between operands or cells)
// return field.ErrFieldMismatch; the shape and indexing sentinels below are
// matrix-local. Every message is prefixed with "matrix: ..." for easy
// grepping.

var (
	// ErrNonSquare is returned by constructors when the cell grid is empty,
	// ragged, or has row count != column count.
	ErrNonSquare = errors.New("matrix: cells do not form a square matrix")

	// ErrInvalidSize indicates a requested size < 1 (Identity, Zero).
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, size).
	// Public indexers (At, Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two operands of different sizes in a
	// binary operation (Add, Sub, Mul).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
