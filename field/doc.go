// SPDX-License-Identifier: MIT

// Package field implements exact arithmetic in prime finite fields Fp.
//
// 🚀 What is field?
//
//	The leaf package of the algebra engine. It provides:
//	  • Fp      — an immutable descriptor of a prime modulus
//	  • Element — a residue class modulo that prime, with full field arithmetic
//	  • Scalar  — the tagged union "bare integer | field element" consumed by
//	    the poly and matrix packages
//
// ✨ Design rules:
//
//   - Construct, then trust: New validates primality (injectable oracle),
//     NewElement reduces into [0, p), and every operation preserves the
//     canonical range. There is no mutation anywhere.
//   - One coercion point: mixed raw/field arithmetic is resolved by a single
//     helper, so lifting behaves identically in every operation.
//   - Sentinel errors only: ErrNotPrime, ErrFieldMismatch,
//     ErrNegativeExponent, ErrDivisionByZero, ErrInexactDivision. Match with
//     errors.Is; nothing panics on user input.
//
// ⚙️ Usage:
//
//	f2, err := field.New(2)
//	if err != nil { ... }                 // ErrNotPrime for composite moduli
//
//	a := field.MustElement(f2, 5)         // 1 mod 2
//	b := field.MustElement(f2, 1)
//	sum, _ := a.Add(b)                    // 0 mod 2
//
//	s, _ := field.Mul(field.Raw(3), field.FromElement(a)) // lifted into F2
//	fmt.Println(sum, s.Int64())
//
// Performance: every operation is O(1) except Pow and Inv, which are
// logarithmic. Values are int64; any prime below 2^31 is overflow-safe.
package field
