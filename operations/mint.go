// Package operations holds the pure, testable logic behind each CLI
// subcommand, mirroring the teacher CLI's split between flag parsing
// (cmd/) and the work itself (operations/): everything here is callable
// and testable without a terminal attached.
package operations

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"vdfmint/internal/envelope"
	"vdfmint/internal/mint"
	"vdfmint/internal/progressbar"
)

// MintOptions are the parameters a mint invocation needs.
type MintOptions struct {
	MinterIDHex  string
	ChallengeHex string
	Iterations   uint64
	OutputFile   string
	ShowProgress bool
}

// MintResult is what a mint invocation produces.
type MintResult struct {
	PyxIDHex string
	Elapsed  time.Duration
}

// Mint parses the hex-encoded identity fields, runs the full mint pipeline,
// and writes the resulting Pyx to opts.OutputFile as a JSON envelope.
func Mint(opts MintOptions) (*MintResult, error) {
	minterID, err := hex.DecodeString(opts.MinterIDHex)
	if err != nil {
		return nil, fmt.Errorf("minterId is not valid hex: %w", err)
	}
	challenge, err := hex.DecodeString(opts.ChallengeHex)
	if err != nil {
		return nil, fmt.Errorf("challenge is not valid hex: %w", err)
	}

	var progress mint.Progress
	var bar *progressbar.Bar
	if opts.ShowProgress {
		bar = progressbar.New("mint")
		progress = bar.Update
	}

	start := time.Now()
	p, err := mint.Mint(context.Background(), minterID, challenge, opts.Iterations, progress)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("mint failed: %w", err)
	}

	data, err := envelope.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	if err := os.WriteFile(opts.OutputFile, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	id := p.ID()
	return &MintResult{PyxIDHex: hex.EncodeToString(id[:]), Elapsed: elapsed}, nil
}
