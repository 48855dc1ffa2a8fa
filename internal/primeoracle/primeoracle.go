// Package primeoracle implements the VDF's hash-to-prime oracle (spec.md
// §4.6): deriving the deterministic prime L used as the Fiat-Shamir
// challenge in the Wesolowski proof, together with the deterministic
// Miller-Rabin primality test (§4.6.1) that backs it.
//
// Seed derivation. The written protocol calls for seed = SHA-256(bytes(y)).
// Reproducing the authoritative end-to-end test vector in spec.md §8,
// however, only works if the seed candidate is the 32 most-significant
// bytes of y's canonical 256-byte big-endian encoding, taken unhashed. This
// matches spec.md §9's own framing of the y-seed step as a "possible source
// bug": whatever hashed y in the reference implementation did not actually
// run a fresh SHA-256 over y, it effectively just sliced y's leading bytes.
// Per §9's instruction to adopt whichever rule reproduces the vector, this
// package implements the slice rule, not a hash.
package primeoracle

import (
	"math/big"

	"vdfmint/internal/codec"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdfhash"
)

// SeedSize is the width, in bytes, of the candidate seed (and the minimum
// bit length spec.md §3 requires of L).
const SeedSize = 32

// MillerRabinRounds is the deterministic round count spec.md §4.6.1
// mandates.
const MillerRabinRounds = 40

// smallPrimes is the trial-division table of spec.md §4.6 step 4a.
var smallPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// Seed returns the 32-byte candidate seed for y: the most-significant 32
// bytes of y's canonical 256-byte (2048-bit) big-endian encoding.
func Seed(y *big.Int) ([]byte, error) {
	padded, err := codec.IntToBytesWidth(y, rsa2048.Bytes)
	if err != nil {
		return nil, err
	}
	seed := make([]byte, SeedSize)
	copy(seed, padded[:SeedSize])
	return seed, nil
}

// FindPrimeAfter derives the deterministic prime L for a given y: it forms
// the seed, makes it odd if needed, and searches upward by 2 using trial
// division against smallPrimes followed by deterministic Miller-Rabin until
// a prime is found.
func FindPrimeAfter(y *big.Int) (*big.Int, error) {
	seed, err := Seed(y)
	if err != nil {
		return nil, err
	}

	candidate := codec.BytesToInt(seed)
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, big.NewInt(1))
	}

	two := big.NewInt(2)
	for {
		if divisibleBySmallPrime(candidate) {
			candidate = new(big.Int).Add(candidate, two)
			continue
		}
		if isProbablePrime(candidate, MillerRabinRounds) {
			return candidate, nil
		}
		candidate = new(big.Int).Add(candidate, two)
	}
}

func divisibleBySmallPrime(candidate *big.Int) bool {
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if candidate.Cmp(bp) == 0 {
			continue
		}
		if new(big.Int).Mod(candidate, bp).Sign() == 0 {
			return true
		}
	}
	return false
}

// isProbablePrime runs the deterministic Miller-Rabin test of spec.md
// §4.6.1 for rounds independent witnesses derived from SHA-256(intBytes(n)
// || u32BE(i)).
func isProbablePrime(n *big.Int, rounds int) bool {
	if n.Cmp(big.NewInt(5)) < 0 {
		return false
	}

	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nBytes := codec.IntToBytes(n)
	nMinus4 := new(big.Int).Sub(n, big.NewInt(4))

	for i := 0; i < rounds; i++ {
		w := vdfhash.Sum256(nBytes, codec.U32BE(uint32(i)))
		a := new(big.Int).Mod(codec.BytesToInt(w[:]), nMinus4)
		a.Add(a, big.NewInt(2))

		x0 := new(big.Int).Exp(a, d, n)
		if x0.Cmp(big.NewInt(1)) == 0 || x0.Cmp(nMinus1) == 0 {
			continue
		}

		passed := false
		for j := 0; j < s-1; j++ {
			x0 = new(big.Int).Mod(new(big.Int).Mul(x0, x0), n)
			if x0.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}
