// SPDX-License-Identifier: MIT

// Package builder constructs structured matrices from other algebra values.
//
// Two builders are provided:
//
//   - Companion(p) — the companion matrix of a polynomial of degree ≥ 2:
//     subdiagonal ones, negated monic coefficients in the last column. Its
//     characteristic polynomial equals the monic normalization of p, so for
//     p = 1 + x + x² over F2 the result M satisfies M² + M + I = 0.
//   - BlockDiagonal(ms) — same-field square matrices placed along the main
//     diagonal of one larger matrix, zeros elsewhere.
//
// Both are thin validated entry points in front of the matrix package: they
// check their input contracts (ErrDegreeTooLow, ErrNoMatrices, ErrNilInput,
// field.ErrFieldMismatch), then build, and never return a partial result.
//
// ⚙️ Usage:
//
//	f2, _ := field.New(2)
//	p, _ := poly.Over(f2, 1, 1, 1)      // 1 + x + x^2
//	m, _ := builder.Companion(p)        // [[0, 1]\n [1, 1]] over F2
//	d, _ := builder.BlockDiagonal([]*matrix.Matrix{m, m})
//	_ = d                               // 4×4, two copies of m on the diagonal
package builder
