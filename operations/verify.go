package operations

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"vdfmint/internal/envelope"
	"vdfmint/internal/mint"
	"vdfmint/internal/vdferr"
)

// VerifyOptions are the parameters a verify invocation needs.
type VerifyOptions struct {
	InputFile string
}

// VerifyResult is what a verify invocation produces.
type VerifyResult struct {
	Valid      bool
	PyxIDHex   string
	Iterations uint64
	Elapsed    time.Duration
}

// Verify reads a JSON envelope from opts.InputFile and checks the
// Wesolowski identity it encodes.
func Verify(opts VerifyOptions) (*VerifyResult, error) {
	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	p, err := envelope.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pyx envelope: %w", err)
	}

	start := time.Now()
	valid, err := mint.Verify(p)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, vdferr.ProofMismatch) {
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	id := p.ID()
	return &VerifyResult{
		Valid:      valid,
		PyxIDHex:   hex.EncodeToString(id[:]),
		Iterations: p.Iterations(),
		Elapsed:    elapsed,
	}, nil
}
