package pyx

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"vdfmint/internal/vdferr"
)

func vectorPyx(t *testing.T) *Pyx {
	t.Helper()
	minterID := bytes.Repeat([]byte{0x01}, 32)
	challenge := bytes.Repeat([]byte{0x02}, 32)

	y, _ := new(big.Int).SetString("9cf29c5108763beeb964557e1e89ea90d441c9b6e2286d0c4c50ca1e8b3b4bf"+
		"2a4c5be5a9ee31b0202f4e35748c82c81c00c4311299546ab360a4699e451cf"+
		"8207dee2d43594f13a0c090f8bb28d207f567d08e190079f167f199f5d02b8d"+
		"8bab768f6e386a4b031e6990f18b57fd3dba7531540466e4bcf13cb8104604f"+
		"48c0f65bca7832465c5e93187c2c4643d34ed0923d8a3b7535b18693d540b1b"+
		"5ac0973a6730732a10202da9d5bf7dc704bf5bea0fb8896d7baae027df66e98"+
		"a9aa43632f7a55a2208f024779b452a8988ed88f24b9e5f118b8b0a8952d0c3"+
		"66abb3b822c2a3d43ae467ca38c379bd50b4964aecb104a3803aa2c372261dd"+
		"4dd17c6c", 16)
	pi, _ := new(big.Int).SetString("624b5070ee120bc374f9bd9b5afc8708c1a8be4f8f5f90aa8bfa34ab269d95f"+
		"4946bd670979a5514791dba491de1dc15e70d42758b8d0bba6979c7e6bf9a18"+
		"2ab574df51c2968f9b0e76331225ba1a9a65b3279582cf0ca1f264eb26b10af"+
		"4376b6c73b4d8ae23698fb05bbda60a8dc79f4016bb703afdb17b6d3eb8b20d"+
		"b1ba30435519b6cfc1f2951bc130db7367d57a6344acd499ac2ea73268d1084"+
		"5069a448a8976d1fc364a0921a3f406dab6e105f88a233c4c08177ef10db84e"+
		"e35f6e5079bf234aeb6b00be05ca3aad7dbd14502a6244a650b07545388c048"+
		"10c0874c667d9db165d3e87754bacd0ed857c50cd5a9951606ad708c3ff29a7"+
		"6e505365", 16)

	p, err := New(minterID, challenge, 50000, y, pi)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

func TestSerializedLengthIs585(t *testing.T) {
	p := vectorPyx(t)
	out, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if len(out) != SerializedSize {
		t.Fatalf("expected %d bytes, got %d", SerializedSize, len(out))
	}
}

func TestRoundTripPreservesFields(t *testing.T) {
	p := vectorPyx(t)
	data, err := p.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if !bytes.Equal(got.MinterID(), p.MinterID()) {
		t.Errorf("minterId mismatch")
	}
	if !bytes.Equal(got.Challenge(), p.Challenge()) {
		t.Errorf("challenge mismatch")
	}
	if got.Iterations() != p.Iterations() {
		t.Errorf("iterations mismatch: got %d want %d", got.Iterations(), p.Iterations())
	}
	if got.Y().Cmp(p.Y()) != 0 {
		t.Errorf("y mismatch")
	}
	if got.Proof().Cmp(p.Proof()) != 0 {
		t.Errorf("proof mismatch")
	}
	if got.ID() != p.ID() {
		t.Errorf("pyxId mismatch across round trip")
	}
}

func TestDeserializeRejectsWrongLength(t *testing.T) {
	p := vectorPyx(t)
	data, _ := p.Serialize()

	if _, err := Deserialize(data[:len(data)-1]); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestDeserializeRejectsUnsupportedVersion(t *testing.T) {
	p := vectorPyx(t)
	data, _ := p.Serialize()
	data[0] = 0x02

	if _, err := Deserialize(data); err == nil {
		t.Fatalf("expected error for unsupported version")
	}
}

func TestVerifyAcceptsAuthoritativeVector(t *testing.T) {
	p := vectorPyx(t)
	valid, err := p.Verify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatalf("expected authoritative vector to verify")
	}
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	p := vectorPyx(t)
	data, _ := p.Serialize()
	// flip the low bit of the last proof byte
	data[len(data)-1] ^= 0x01

	tampered, err := Deserialize(data)
	if err != nil {
		t.Fatalf("unexpected deserialize error: %v", err)
	}
	valid, err := tampered.Verify()
	if !errors.Is(err, vdferr.ProofMismatch) {
		t.Fatalf("expected ProofMismatch, got: %v", err)
	}
	if valid {
		t.Fatalf("expected tampered proof to be rejected")
	}
}

func TestNewRejectsWrongWidthMinterID(t *testing.T) {
	challenge := bytes.Repeat([]byte{0x02}, 32)
	if _, err := New(bytes.Repeat([]byte{0x01}, 31), challenge, 50000, big.NewInt(1), big.NewInt(1)); err == nil {
		t.Fatalf("expected error for short minterId")
	}
}
