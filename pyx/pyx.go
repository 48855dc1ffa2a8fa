// Package pyx implements the Pyx container and its canonical serializer
// (spec.md §4.9 / C9): the artifact binding a minter identity, a challenge,
// an iteration count, a VDF output, and a Wesolowski proof. It also drives
// the verification control flow (C9 -> C4 -> C6 -> C8) spec.md §2 names.
package pyx

import (
	"encoding/binary"
	"math/big"

	"vdfmint/internal/basepoint"
	"vdfmint/internal/codec"
	"vdfmint/internal/primeoracle"
	"vdfmint/internal/rsa2048"
	"vdfmint/internal/vdferr"
	"vdfmint/internal/vdfhash"
	"vdfmint/internal/verifier"
)

// ProtocolVersion is the single byte every canonical serialization starts
// with (spec.md §3).
const ProtocolVersion = 0x01

// Field widths of the canonical 585-byte layout (spec.md §4.9).
const (
	minterIDSize  = 32
	challengeSize = 32
	iterationsSize = 8
	residueSize   = rsa2048.Bytes // 256

	headerSize = 1 + minterIDSize + challengeSize + iterationsSize
	// SerializedSize is the fixed total length of a canonical Pyx.
	SerializedSize = headerSize + residueSize + residueSize
)

// Pyx aggregates the fields spec.md §3 names. It is immutable once
// constructed; pyxId is a pure function of the other fields, computed
// lazily and memoized on first access.
type Pyx struct {
	version    uint8
	minterID   [minterIDSize]byte
	challenge  [challengeSize]byte
	iterations uint64
	y          *big.Int
	proof      *big.Int

	pyxID    [32]byte
	pyxIDSet bool
}

// New constructs a Pyx from its final fields, validating the invariants
// spec.md §3 requires (field widths, y and π reduced modulo N). This is the
// single constructor the design notes call for — there is no
// build-in-stages API; minterID/challenge are copied defensively into
// fixed-size arrays, since Pyx exclusively owns its field bytes.
func New(minterID, challenge []byte, iterations uint64, y, proofVal *big.Int) (*Pyx, error) {
	if !basepoint.ValidateInputLengths(minterID, challenge) {
		return nil, vdferr.Invalid("minterId and challenge must each be 32 bytes")
	}
	if iterations < 1 {
		return nil, vdferr.Invalid("iterations must be >= 1")
	}
	if y == nil || proofVal == nil {
		return nil, vdferr.Invalid("y and proof are required")
	}
	n := rsa2048.N()
	if y.Sign() < 0 || y.Cmp(n) >= 0 {
		return nil, vdferr.Invalid("y is out of range [0, N)")
	}
	if proofVal.Sign() < 0 || proofVal.Cmp(n) >= 0 {
		return nil, vdferr.Invalid("proof is out of range [0, N)")
	}

	p := &Pyx{
		version:    ProtocolVersion,
		iterations: iterations,
		y:          new(big.Int).Set(y),
		proof:      new(big.Int).Set(proofVal),
	}
	copy(p.minterID[:], minterID)
	copy(p.challenge[:], challenge)
	return p, nil
}

// MinterID returns a copy of the 32-byte minter identity.
func (p *Pyx) MinterID() []byte {
	out := make([]byte, minterIDSize)
	copy(out, p.minterID[:])
	return out
}

// Challenge returns a copy of the 32-byte per-mint challenge.
func (p *Pyx) Challenge() []byte {
	out := make([]byte, challengeSize)
	copy(out, p.challenge[:])
	return out
}

// Iterations returns T.
func (p *Pyx) Iterations() uint64 { return p.iterations }

// Y returns a copy of the VDF output residue.
func (p *Pyx) Y() *big.Int { return new(big.Int).Set(p.y) }

// Proof returns a copy of the Wesolowski proof residue.
func (p *Pyx) Proof() *big.Int { return new(big.Int).Set(p.proof) }

// Version returns the protocol version byte this Pyx was built with.
func (p *Pyx) Version() uint8 { return p.version }

// ID returns pyxId = SHA-256(canonical serialization), memoizing the
// result since pyxId is a pure function of the other fields.
func (p *Pyx) ID() [32]byte {
	if p.pyxIDSet {
		return p.pyxID
	}
	canonical, err := p.Serialize()
	if err != nil {
		// Serialize cannot fail for a Pyx built through New or Deserialize:
		// both enforce the range invariants Serialize depends on.
		panic(vdferr.Internal)
	}
	p.pyxID = vdfhash.Sum256(canonical)
	p.pyxIDSet = true
	return p.pyxID
}

// Serialize emits the canonical 585-byte layout of spec.md §4.9.
func (p *Pyx) Serialize() ([]byte, error) {
	yBytes, err := codec.IntToBytesWidth(p.y, residueSize)
	if err != nil {
		return nil, vdferr.Invalid("y does not fit in 256 bytes")
	}
	piBytes, err := codec.IntToBytesWidth(p.proof, residueSize)
	if err != nil {
		return nil, vdferr.Invalid("proof does not fit in 256 bytes")
	}

	out := make([]byte, 0, SerializedSize)
	out = append(out, p.version)
	out = append(out, p.minterID[:]...)
	out = append(out, p.challenge[:]...)
	out = append(out, codec.U64BE(p.iterations)...)
	out = append(out, yBytes...)
	out = append(out, piBytes...)
	return out, nil
}

// Deserialize parses the canonical 585-byte layout back into a Pyx. Any
// structural failure (wrong length, unsupported version) is reported as
// vdferr.MalformedPyx.
func Deserialize(data []byte) (*Pyx, error) {
	if len(data) != SerializedSize {
		return nil, vdferr.WrapMalformed(nil, "serialized Pyx must be exactly 585 bytes")
	}
	version := data[0]
	if version != ProtocolVersion {
		return nil, vdferr.WrapMalformed(nil, "unsupported protocol version")
	}

	offset := 1
	var minterID, challenge [32]byte
	copy(minterID[:], data[offset:offset+minterIDSize])
	offset += minterIDSize
	copy(challenge[:], data[offset:offset+challengeSize])
	offset += challengeSize

	iterations := binary.BigEndian.Uint64(data[offset : offset+iterationsSize])
	offset += iterationsSize

	y := codec.BytesToInt(data[offset : offset+residueSize])
	offset += residueSize
	proofVal := codec.BytesToInt(data[offset : offset+residueSize])

	p, err := New(minterID[:], challenge[:], iterations, y, proofVal)
	if err != nil {
		return nil, vdferr.WrapMalformed(err, "decoded fields fail structural validation")
	}
	return p, nil
}

// Verify re-derives x and L from the Pyx's public fields and checks the
// Wesolowski identity (spec.md §4.8), following the C9 -> C4 -> C6 -> C8
// control flow. A cryptographic mismatch is reported as (false,
// vdferr.ProofMismatch), per spec.md §7/§8; other errors indicate a
// structural problem re-deriving L from y.
func (p *Pyx) Verify() (bool, error) {
	x := basepoint.DeriveX(p.minterID[:], p.challenge[:], p.iterations)

	l, err := primeoracle.FindPrimeAfter(p.y)
	if err != nil {
		return false, vdferr.WrapMalformed(err, "failed to re-derive L")
	}

	return verifier.Verify(verifier.Inputs{
		X:          x,
		L:          l,
		Iterations: p.iterations,
		Y:          p.y,
		Proof:      p.proof,
	})
}
