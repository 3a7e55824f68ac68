// SPDX-License-Identifier: MIT

// Package poly provides immutable univariate polynomials over raw integers
// or prime-field residues.
//
// 🚀 What is poly?
//
//	Polynomials are coefficient sequences, constant term first, over
//	field.Scalar. The same type covers ordinary integer polynomials and
//	polynomials over some Fp; construction decides the domain once, and
//	arithmetic never has to guess again.
//
// ✨ Key guarantees:
//
//   - Normal form: no trailing zero coefficients (the zero polynomial is the
//     single coefficient [0]), so Degree and Equal are trivial reads.
//   - Homogeneous coefficients: mixed-prime inputs are rejected at New;
//     raw coefficients next to field coefficients are lifted into the field.
//   - Total, fail-fast arithmetic: Add, Sub, Mul, Scale, Pow, Eval (Horner)
//     and Derivative return sentinel errors, never partial results.
//
// ⚙️ Usage:
//
//	p := poly.FromInt64s(1, 1, 1)       // 1 + x + x^2
//	q, _ := p.Pow(2)
//	fmt.Println(q)                      // x^4 + 2x^3 + 3x^2 + 2x + 1
//
//	f2, _ := field.New(2)
//	r, _ := poly.Over(f2, 1, 1, 1)      // coefficients reduced mod 2
//	v, _ := r.Eval(field.Raw(5))        // Horner, lifted into F2
//	_ = v
//
// Rendering follows the classic descending form: "x^2 + x + 1", with zero
// terms omitted and "0" for the zero polynomial.
package poly
