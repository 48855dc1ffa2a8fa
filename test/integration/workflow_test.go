package integration

import (
	"testing"

	"vdfmint/operations"
)

// Core mint/verify workflow tests, grounded on the teacher CLI's
// encrypt/decrypt round-trip suite, adapted to the VDF domain: mint a Pyx
// to a file, then verify it back.

const testIterations = 2000

func TestBasicMintVerifyWorkflow(t *testing.T) {
	cases := []struct {
		name       string
		minterID   string
		challenge  string
		iterations uint64
	}{
		{"small", hexOf(0x01, 32), hexOf(0x02, 32), 10},
		{"moderate", hexOf(0xaa, 32), hexOf(0xbb, 32), testIterations},
		{"single-iteration", hexOf(0x03, 32), hexOf(0x04, 32), 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			outPath := tempOutputPath(t, "pyx.json")

			mintResult, err := operations.Mint(operations.MintOptions{
				MinterIDHex:  c.minterID,
				ChallengeHex: c.challenge,
				Iterations:   c.iterations,
				OutputFile:   outPath,
			})
			if err != nil {
				t.Fatalf("Mint failed: %v", err)
			}
			if mintResult.PyxIDHex == "" {
				t.Fatalf("expected non-empty pyxId")
			}
			assertFileExists(t, outPath)

			verifyResult, err := operations.Verify(operations.VerifyOptions{InputFile: outPath})
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if !verifyResult.Valid {
				t.Fatalf("expected minted Pyx to verify")
			}
			if verifyResult.PyxIDHex != mintResult.PyxIDHex {
				t.Fatalf("pyxId mismatch: mint=%s verify=%s", mintResult.PyxIDHex, verifyResult.PyxIDHex)
			}
			if verifyResult.Iterations != c.iterations {
				t.Fatalf("iterations mismatch: got %d want %d", verifyResult.Iterations, c.iterations)
			}
		})
	}
}

func TestInspectReportsMetadataWithoutVerifying(t *testing.T) {
	outPath := tempOutputPath(t, "pyx.json")
	if _, err := operations.Mint(operations.MintOptions{
		MinterIDHex:  hexOf(0x05, 32),
		ChallengeHex: hexOf(0x06, 32),
		Iterations:   500,
		OutputFile:   outPath,
	}); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	result, err := operations.Inspect(operations.InspectOptions{InputFile: outPath})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if result.Iterations != 500 {
		t.Fatalf("expected iterations 500, got %d", result.Iterations)
	}
	if result.ModulusBitLen != 2048 {
		t.Fatalf("expected a 2048-bit modulus, got %d", result.ModulusBitLen)
	}
}

func TestDeterministicMintProducesIdenticalOutputs(t *testing.T) {
	minterID := hexOf(0x07, 32)
	challenge := hexOf(0x08, 32)

	outA := tempOutputPath(t, "a.json")
	outB := tempOutputPath(t, "b.json")

	resultA, err := operations.Mint(operations.MintOptions{MinterIDHex: minterID, ChallengeHex: challenge, Iterations: 777, OutputFile: outA})
	if err != nil {
		t.Fatalf("Mint A failed: %v", err)
	}
	resultB, err := operations.Mint(operations.MintOptions{MinterIDHex: minterID, ChallengeHex: challenge, Iterations: 777, OutputFile: outB})
	if err != nil {
		t.Fatalf("Mint B failed: %v", err)
	}

	if resultA.PyxIDHex != resultB.PyxIDHex {
		t.Fatalf("expected identical pyxId for identical inputs, got %s and %s", resultA.PyxIDHex, resultB.PyxIDHex)
	}
}
