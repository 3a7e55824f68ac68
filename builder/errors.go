// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.
// Field mismatches surface the shared field.ErrFieldMismatch; the sentinels
// below are builder-local input-contract violations. Match via errors.Is.

package builder

import "errors"

var (
	// ErrDegreeTooLow is returned by Companion for polynomials of degree
	// below 2: no meaningful companion matrix exists for them.
	ErrDegreeTooLow = errors.New("builder: polynomial degree must be at least 2")

	// ErrNoMatrices is returned by BlockDiagonal for an empty input list.
	ErrNoMatrices = errors.New("builder: no matrices given")

	// ErrNilInput is returned by BlockDiagonal when the input list contains
	// a nil matrix.
	ErrNilInput = errors.New("builder: nil matrix in input")
)
