// SPDX-License-Identifier: MIT

// Package matrix provides immutable square matrices over raw integers or
// prime-field residues, with exact linear-algebra operations.
//
// 🚀 What is matrix?
//
//	An n×n grid of field.Scalar cells in a flat row-major buffer. A matrix
//	is either tied to one prime field (every cell a residue of it) or
//	unfielded (every cell a plain integer); the constructor settles this
//	once and every operation preserves it.
//
// ✨ Key guarantees:
//
//   - No silent re-homing: a cell already tied to a different prime than
//     the requested field fails construction with field.ErrFieldMismatch
//     instead of reinterpreting the residue.
//   - Uniform strictness: Mul validates size and field exactly like Add and
//     Sub; Pow(0) is the identity and negative powers are rejected.
//   - No panics, no mutation: At/Row return ErrOutOfRange, operations
//     return fresh matrices, failures return no matrix at all.
//
// ⚙️ Usage:
//
//	f2, _ := field.New(2)
//	m, _ := matrix.Lift(f2, [][]int64{{0, 1}, {1, 1}})
//	sq, _ := m.Pow(2)
//	id, _ := matrix.Identity(2, f2)
//	fmt.Println(sq.Add(id))
//
// Rendering: "[[0, 1]\n [1, 1]]" style bracketed rows of cell values.
//
// Performance: Add/Sub/Scale O(n^2), Mul O(n^3), Pow O(n^3 · e). Sizes are
// expected to stay small; this is an exact engine, not a BLAS.
package matrix
