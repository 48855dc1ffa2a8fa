package operations

import (
	"encoding/hex"
	"fmt"
	"os"

	"vdfmint/internal/envelope"
	"vdfmint/internal/progressbar"
	"vdfmint/internal/rsa2048"
)

// InspectOptions are the parameters an inspect invocation needs.
type InspectOptions struct {
	InputFile string
}

// InspectResult is the metadata extracted from a Pyx envelope, mirroring
// the teacher CLI's CheckResult shape.
type InspectResult struct {
	InputFile     string
	PyxIDHex      string
	MinterIDHex   string
	ChallengeHex  string
	Iterations    uint64
	ModulusBitLen int
	OutputBitLen  int
	ProofBitLen   int
	FileSize      int64
	EstimatedTime string
}

// Inspect reads a JSON envelope and reports its structural metadata without
// running verification (that is the verify command's job).
func Inspect(opts InspectOptions) (*InspectResult, error) {
	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	info, err := os.Stat(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}

	p, err := envelope.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pyx envelope: %w", err)
	}

	id := p.ID()
	estimated := progressbar.FormatDuration(
		progressbar.EstimateDuration(p.Iterations(), assumedSquaringsPerSecond),
	)

	return &InspectResult{
		InputFile:     opts.InputFile,
		PyxIDHex:      hex.EncodeToString(id[:]),
		MinterIDHex:   hex.EncodeToString(p.MinterID()),
		ChallengeHex:  hex.EncodeToString(p.Challenge()),
		Iterations:    p.Iterations(),
		ModulusBitLen: rsa2048.N().BitLen(),
		OutputBitLen:  p.Y().BitLen(),
		ProofBitLen:   p.Proof().BitLen(),
		FileSize:      info.Size(),
		EstimatedTime: estimated + " (rough, see bench for an accurate rate)",
	}, nil
}

// assumedSquaringsPerSecond is a conservative placeholder rate used only to
// give inspect a ballpark "how long did this take" figure when no bench
// measurement is available; bench.go reports the caller's actual rate.
const assumedSquaringsPerSecond = 50000
