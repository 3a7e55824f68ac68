// SPDX-License-Identifier: MIT

// Package builder - companion matrix construction.
package builder

import (
	"fmt"

	"github.com/katalvlaran/primefield/field"
	"github.com/katalvlaran/primefield/matrix"
	"github.com/katalvlaran/primefield/poly"
)

// Companion returns the companion matrix of p: the n×n matrix (n = degree
// of p) whose characteristic polynomial is the monic normalization of p.
//
// Stage 1 (Validate): degree must be at least 2.
// Stage 2 (Normalize): divide every coefficient by the leading one. Over a
// field this multiplies by the inverse; over raw integers the division must
// be exact (field.ErrInexactDivision otherwise).
// Stage 3 (Build): row i gets a 1 at column i-1 (subdiagonal, for i > 0)
// and -c_i at the last column, where c_i is the i-th normalized
// coefficient; every other cell is 0.
//
// The resulting matrix carries the polynomial's field; a raw polynomial
// yields an unfielded integer matrix. Since field coefficients keep their
// Fp even when the stored residue is zero, the field is always recoverable
// from the input.
//
// Errors: ErrDegreeTooLow, field.ErrInexactDivision.
// Complexity: O(n^2).
func Companion(p poly.Polynomial) (*matrix.Matrix, error) {
	// 1) Degree contract.
	n := p.Degree()
	if n < 2 {
		return nil, fmt.Errorf("Companion(degree %d): %w", n, ErrDegreeTooLow)
	}

	// 2) Monic normalization. The leading coefficient is non-zero by the
	// polynomial's trim invariant.
	lead := p.Coefficient(n)

	// 3) Assemble rows. The Scalar zero value is the raw 0; matrix.New
	// lifts it into the field when one is present.
	one := field.Raw(1)
	rows := make([][]field.Scalar, n)
	for i := 0; i < n; i++ {
		row := make([]field.Scalar, n)
		if i > 0 {
			row[i-1] = one
		}
		ci, err := field.Div(p.Coefficient(i), lead)
		if err != nil {
			return nil, fmt.Errorf("Companion: %w", err)
		}
		row[n-1] = field.Neg(ci)
		rows[i] = row
	}

	return matrix.New(p.Fp(), rows)
}
