// Package proof implements the VDF's Streaming proof engine (spec.md §4.7):
// computing π = x^⌊2^T / L⌋ mod N in a single forward pass over the T
// iterations, using MSB-first long division of 2^T by L, without ever
// materializing 2^T itself. Memory is O(1): two residues modulo N and one
// residue modulo L.
package proof

import (
	"context"
	"math/big"

	"vdfmint/internal/bigmath"
	"vdfmint/internal/eval"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdferr"
)

// Progress mirrors eval.Progress: invoked with a percentage in [0, 100].
type Progress func(percent uint8)

// Run computes π = x^⌊2^T / L⌋ mod N via the streaming long-division
// schedule of spec.md §4.7. It checks ctx for cancellation at the same
// granularity as eval.Run.
func Run(ctx context.Context, x, l *big.Int, t uint64, progress Progress) (*big.Int, error) {
	n := rsa2048.N()

	remainder := big.NewInt(1)
	proofVal := big.NewInt(1)
	two := big.NewInt(2)

	if progress != nil {
		progress(0)
	}

	for i := uint64(0); i < t; i++ {
		doubled := new(big.Int).Mul(remainder, two)
		bit := new(big.Int).Div(doubled, l)
		remainder = new(big.Int).Mod(doubled, l)

		proofVal = bigmath.SqrMod(proofVal, n)
		if bit.Sign() != 0 {
			proofVal = bigmath.MulMod(proofVal, x, n)
		}

		if (i+1)%eval.YieldEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, vdferr.Cancelled
			default:
			}
		}

		if progress != nil && t > 0 && ((i+1)%eval.ChunkSize == 0 || i+1 == t) {
			progress(uint8((i + 1) * 100 / t))
		}
	}

	if progress != nil {
		progress(100)
	}

	return proofVal, nil
}

// Remainder computes 2^T mod L directly, without the streaming pass. This is
// the r value spec.md §4.8 needs at verification time; Run's own running
// remainder after T iterations equals the same value, but the verifier
// re-derives it independently via bigmath.ModExp rather than trusting a
// side product of Run.
func Remainder(t uint64, l *big.Int) *big.Int {
	tBig := new(big.Int).SetUint64(t)
	return bigmath.ModExp(big.NewInt(2), tBig, l)
}
