// Package basepoint derives the VDF's starting residue x from a minter's
// identity, a per-mint challenge, and the iteration count. This is the C4
// stage of the pipeline: everything downstream (evaluation, the prime
// oracle, the proof, verification) is anchored to the x this package
// produces.
package basepoint

import (
	"math/big"

	"vdfmint/internal/codec"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdfhash"
)

// MinterIDSize and ChallengeSize are the fixed input widths spec.md §3
// requires.
const (
	MinterIDSize  = 32
	ChallengeSize = 32
)

// DeriveX computes x = SHA256(minterID || challenge || u64BE(T)) mod N.
// minterID and challenge must each be exactly 32 bytes; callers are expected
// to have validated lengths before calling (see vdferr.InvalidArgument at
// the mint/verify boundary).
func DeriveX(minterID, challenge []byte, iterations uint64) *big.Int {
	input := codec.Concat(minterID, challenge, codec.U64BE(iterations))
	h := vdfhash.Sum256(input)
	x := codec.BytesToInt(h[:])
	return x.Mod(x, rsa2048.N())
}

// ValidateInputLengths reports whether minterID and challenge have the
// widths spec.md §3 requires.
func ValidateInputLengths(minterID, challenge []byte) bool {
	return len(minterID) == MinterIDSize && len(challenge) == ChallengeSize
}
