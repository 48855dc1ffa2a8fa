// Package bigmath is the big-integer arithmetic façade used throughout the
// VDF pipeline. It wraps math/big with the three operations the rest of the
// module needs — modular multiply, modular square, and modular
// exponentiation — so that every squaring and multiplication in the mint and
// verify paths agrees bit-for-bit regardless of call site.
package bigmath

import "math/big"

// MulMod returns a*b mod n. a and b are expected to already be reduced
// modulo n, but MulMod does not require it.
func MulMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), n)
}

// SqrMod returns a*a mod n. Extracted from MulMod so the evaluation and
// proof loops read as the single sequential squaring they are.
func SqrMod(a, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, a), n)
}

// ModExp returns base^exp mod n, computed by math/big's Int.Exp. exp may be
// arbitrary non-negative; base must be in [0, n).
func ModExp(base, exp, n *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, n)
}
