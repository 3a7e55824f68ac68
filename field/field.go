// SPDX-License-Identifier: MIT

// Package field: the prime-field descriptor Fp and its construction policy.
//
// Fp is a tiny immutable value: it records the prime modulus and nothing
// else. Elements keep a pointer back to their Fp, so a single descriptor is
// shared by every residue and matrix built over it; since Fp is never
// mutated after New, that sharing is safe without synchronization.
//
// Primality is delegated to an injectable oracle (functional option), with
// an exact math/big based default. This keeps New deterministic and lets
// callers substitute their own test.
package field

import (
	"fmt"
	"math/big"
)

// Defaults (single source of truth).
const (
	// MinModulus is the smallest admissible field order (the prime 2).
	MinModulus = 2
)

// PrimalityTest reports whether n is prime. Implementations must be pure:
// same input, same answer, no side effects.
type PrimalityTest func(n int64) bool

// Option customizes field construction.
type Option func(*options)

// options carries resolved construction policy. Unexported by design;
// public APIs consume ...Option.
type options struct {
	isPrime PrimalityTest
}

// WithPrimalityTest injects a custom primality oracle into New.
// Passing nil panics: a missing oracle is a programmer error, not input.
func WithPrimalityTest(fn PrimalityTest) Option {
	if fn == nil {
		panic("field: WithPrimalityTest(nil)")
	}

	return func(o *options) { o.isPrime = fn }
}

// defaultIsPrime is the stock oracle. big.Int.ProbablyPrime applies a
// Baillie-PSW test that is exact for every input below 2^64, which covers
// the whole int64 domain.
func defaultIsPrime(n int64) bool {
	return big.NewInt(n).ProbablyPrime(0)
}

// Fp is an immutable descriptor of the finite field of integers modulo a
// prime. Equality is by prime value. The zero value is invalid; always
// construct through New.
type Fp struct {
	prime int64
}

// New constructs the field of integers modulo prime.
// Stage 1 (Resolve): apply functional options over defaults.
// Stage 2 (Validate): bounds check, then consult the primality oracle.
// Stage 3 (Finalize): return the immutable descriptor.
// Errors: ErrNonPositive for moduli < 2, ErrNotPrime for composite moduli.
// Complexity: O(cost of the oracle); the default is polylog in prime.
func New(prime int64, opts ...Option) (*Fp, error) {
	// 1) Resolve options over defaults.
	cfg := options{isPrime: defaultIsPrime}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the modulus.
	if prime < MinModulus {
		return nil, fmt.Errorf("New(%d): %w", prime, ErrNonPositive)
	}
	if !cfg.isPrime(prime) {
		return nil, fmt.Errorf("New(%d): %w", prime, ErrNotPrime)
	}

	// 3) Done.
	return &Fp{prime: prime}, nil
}

// Prime returns the field's modulus.
// Complexity: O(1).
func (f *Fp) Prime() int64 { return f.prime }

// Equal reports whether two descriptors denote the same field.
// Nil handles: two nils are equal (both mean "no field"), nil never equals
// a real field.
// Complexity: O(1).
func (f *Fp) Equal(other *Fp) bool {
	if f == nil || other == nil {
		return f == other
	}

	return f.prime == other.prime
}

// EqualInt reports whether the field's prime equals a bare integer.
// Complexity: O(1).
func (f *Fp) EqualInt(n int64) bool {
	return f != nil && f.prime == n
}

// String implements fmt.Stringer: "F<prime>".
func (f *Fp) String() string {
	return fmt.Sprintf("F%d", f.prime)
}
