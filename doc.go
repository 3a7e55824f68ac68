// Package primefield is a small exact-arithmetic algebra engine: prime
// finite fields, residue elements, univariate polynomials and square
// matrices, plus the structural builders that connect them.
//
// 🚀 What is primefield?
//
//	A modern, dependency-light library that brings together:
//		• field    — prime fields Fp, residue Elements, and the raw/field Scalar union
//		• poly     — univariate polynomials with exact Add/Sub/Mul/Pow/Eval/Derivative
//		• matrix   — immutable square matrices with exact linear algebra
//		• builder  — companion matrices of polynomials & block-diagonal composition
//
// ✨ Why choose primefield?
//
//   - Exact by construction – residues are reduced once and stay in [0, p)
//   - Immutable values – every operation returns a fresh result, safe to share
//   - Fail-fast sentinels – errors.Is-friendly errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//
// Data flows leaf-first: a Polynomial feeds builder.Companion to produce a
// Matrix; several Matrices feed builder.BlockDiagonal to produce one; field
// supplies the scalar arithmetic underneath all of it.
//
// Quick example:
//
//	f2, _ := field.New(2)
//	p, _ := poly.Over(f2, 1, 1, 1)          // 1 + x + x^2 over F2
//	m, _ := builder.Companion(p)            // [[0, 1]\n [1, 1]]
//	sq, _ := m.Pow(2)
//	sum, _ := sq.Add(m)                     // M^2 + M
//	id, _ := matrix.Identity(2, f2)
//	chk, _ := sum.Add(id)                   // = 0: char poly of m is p
//
// See examples/ for runnable drivers and each package's doc.go for details.
package primefield
