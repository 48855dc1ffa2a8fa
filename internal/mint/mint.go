// Package mint orchestrates the full minting control flow spec.md §2 names:
// C4 -> C5 -> C6 -> C7 -> C9. It is the only package that sequences the
// pipeline stages together; each stage package stays independently usable
// and testable. Cancellation is plumbed through with an errgroup, mirroring
// how the eth2030 VDF corpus entry supervises its solve/verify goroutines —
// here a single worker goroutine runs the pipeline while the group's
// context ties its lifetime to the caller's ctx.
package mint

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vdfmint/internal/basepoint"
	"vdfmint/internal/eval"
	"vdfmint/internal/primeoracle"
	"vdfmint/internal/proof"
	"vdfmint/internal/vdferr"
	"vdfmint/pyx"
)

// Progress is invoked with a percentage in [0, 100]. Mint reports progress
// across both the evaluation and proof stages, each contributing half of
// the overall range, so the caller sees one monotonically non-decreasing
// sequence from 0 to 100 rather than two independent ones.
type Progress func(percent uint8)

// Mint runs the full pipeline: derive x, evaluate y = x^(2^T) mod N, find L
// from y, stream the proof π, and assemble the resulting Pyx. It fails with
// vdferr.InvalidArgument if minterID/challenge are the wrong width or T < 1,
// and propagates vdferr.Cancelled if ctx is cancelled mid-run.
func Mint(ctx context.Context, minterID, challenge []byte, iterations uint64, progress Progress) (*pyx.Pyx, error) {
	if !basepoint.ValidateInputLengths(minterID, challenge) {
		return nil, vdferr.Invalid("minterId and challenge must each be 32 bytes")
	}
	if iterations < 1 {
		return nil, vdferr.Invalid("iterations must be >= 1")
	}

	x := basepoint.DeriveX(minterID, challenge, iterations)

	var result *pyx.Pyx

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		y, err := eval.Run(gctx, x, iterations, scaledProgress(progress, 0, 50))
		if err != nil {
			return err
		}

		l, err := primeoracle.FindPrimeAfter(y)
		if err != nil {
			return err
		}

		proofVal, err := proof.Run(gctx, x, l, iterations, scaledProgress(progress, 50, 100))
		if err != nil {
			return err
		}

		p, err := pyx.New(minterID, challenge, iterations, y, proofVal)
		if err != nil {
			return err
		}
		result = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// scaledProgress maps a [0,100] sub-stage percentage into the [lo,hi]
// sub-range of the overall Mint progress, so evaluation and proof each
// report into their own half without either stage knowing about the other.
func scaledProgress(p Progress, lo, hi uint8) func(uint8) {
	if p == nil {
		return nil
	}
	span := int(hi) - int(lo)
	return func(percent uint8) {
		p(uint8(int(lo) + span*int(percent)/100))
	}
}

// Verify re-derives x and L from pyx's public fields and checks the
// Wesolowski identity, following the C9 -> C4 -> C6 -> C8 control flow.
// This simply delegates to pyx.Verify; it exists so callers that think in
// terms of the mint package's orchestration API have a symmetric entry
// point alongside Mint.
func Verify(p *pyx.Pyx) (bool, error) {
	return p.Verify()
}
