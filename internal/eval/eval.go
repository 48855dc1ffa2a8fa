// Package eval implements the VDF's Evaluation engine (spec.md §4.5): T
// sequential modular squarings producing y = x^(2^T) mod N. This loop is the
// irreducible wall-clock core of the whole system and must never be
// parallelized across the T axis.
package eval

import (
	"context"
	"math/big"

	"vdfmint/internal/bigmath"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdferr"
)

// ChunkSize is the recommended progress-reporting granularity (spec.md §4.5).
const ChunkSize = 1000

// YieldEvery is the cooperative-scheduling granularity: cancellation and
// progress delivery are only guaranteed to be observed at this interval
// (spec.md §5).
const YieldEvery = 50000

// Progress is invoked with a percentage in [0, 100], monotonically
// non-decreasing, 0 at start and 100 on successful completion. It may be
// nil.
type Progress func(percent uint8)

// Run performs exactly T sequential squarings starting from x, returning
// y = x^(2^T) mod N. It checks ctx for cancellation every YieldEvery
// iterations; on cancellation it returns vdferr.Cancelled and a nil result.
//
// T == 0 is permitted and returns x unchanged (y = x^(2^0) = x^1... note
// spec.md defines y = x^(2^T); callers must ensure T >= 1 per the
// InvalidArgument contract at the mint boundary — Run itself does not
// reject T == 0, since the pure evaluation step has no reason to know about
// argument validation policy).
func Run(ctx context.Context, x *big.Int, t uint64, progress Progress) (*big.Int, error) {
	n := rsa2048.N()
	y := new(big.Int).Set(x)

	if progress != nil {
		progress(0)
	}

	for i := uint64(0); i < t; i++ {
		y = bigmath.SqrMod(y, n)

		if (i+1)%YieldEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, vdferr.Cancelled
			default:
			}
		}

		if progress != nil && t > 0 && ((i+1)%ChunkSize == 0 || i+1 == t) {
			progress(uint8((i + 1) * 100 / t))
		}
	}

	if progress != nil {
		progress(100)
	}

	return y, nil
}
