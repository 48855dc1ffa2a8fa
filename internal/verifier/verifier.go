// Package verifier implements the VDF's Verifier (spec.md §4.8): it
// re-derives x and L independently from a Pyx's public fields, computes
// r = 2^T mod L, and checks the Wesolowski identity π^L · x^r ≡ y (mod N) in
// time independent of T. It performs no arithmetic on secret material and
// never panics on a cryptographic mismatch — a failed identity is reported
// as vdferr.ProofMismatch rather than a silent false, per spec.md §7/§8.
package verifier

import (
	"math/big"

	"vdfmint/internal/bigmath"
	"vdfmint/internal/proof"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdferr"
)

// Inputs bundles the fields the verifier needs out of a Pyx. It exists so
// this package has no import-time dependency on the pyx package, keeping
// the dependency edge C9 -> C8 one-directional (Pyx calls Verify, not the
// other way around).
type Inputs struct {
	X          *big.Int // re-derived base, supplied by the caller (pyx package owns C4)
	L          *big.Int // re-derived prime, supplied by the caller (pyx package owns C6)
	Iterations uint64
	Y          *big.Int
	Proof      *big.Int
}

// Verify checks the Wesolowski identity. It reports (true, nil) when the
// identity holds, (false, vdferr.ProofMismatch) when it does not, and
// returns vdferr.InvalidArgument only for structural misuse (nil fields).
func Verify(in Inputs) (bool, error) {
	if in.X == nil || in.L == nil || in.Y == nil || in.Proof == nil {
		return false, vdferr.Invalid("verifier: nil field in Inputs")
	}

	n := rsa2048.N()
	r := proof.Remainder(in.Iterations, in.L)

	lhs := bigmath.MulMod(
		bigmath.ModExp(in.Proof, in.L, n),
		bigmath.ModExp(in.X, r, n),
		n,
	)

	if lhs.Cmp(in.Y) != 0 {
		return false, vdferr.ProofMismatch
	}
	return true, nil
}
