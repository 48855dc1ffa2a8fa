// Package rsa2048 holds the single fixed protocol constant every other
// package in this module depends on: the RSA-2048 challenge modulus. There
// is no trusted setup here — per spec.md §1, the modulus is the historical
// RSA Factoring Challenge number, whose factors are (to public knowledge)
// unknown, and every implementation of this protocol must embed the same
// bytes.
package rsa2048

import "math/big"

// Bytes is the width, in bytes, of the fixed 2048-bit modulus and of every
// residue modulo it (y and π are always serialized zero-padded to this
// width).
const Bytes = 256

// decimal is the RSA-2048 challenge number from the RSA Factoring Challenge,
// reproduced verbatim. Its factorization is not known to anyone.
const decimal = "25195908475657893494027183240048398571429282126204032027777137836043662020707595556264018525880784406918290641249515082189298559149176184502808489120072844992687392807287776735971418347270261896375014971824691165077613379859095700097330459748808428401797429100642458691817195118746121515172654632282216869987549182422433637259085141865462043576798423387184774447920739934236584823824281198163815010674810451660377306056201619676256133844143603833904414952634432190114657544454178424020924616515723350778707749817125772467962926386356373289912154831438167899885040445364023527381951378636564391212010397122822120720357"

// N returns a fresh copy of the RSA-2048 challenge modulus. Callers must not
// mutate the returned value in place — math/big operations on it allocate a
// new result, but defensive copying keeps that an enforced invariant rather
// than a convention.
func N() *big.Int {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("rsa2048: embedded modulus failed to parse")
	}
	return n
}
