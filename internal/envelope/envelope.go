// Package envelope implements the JSON test/interchange format spec.md §6
// names as informational (not consensus): Base64-encoded byte fields and a
// decimal iterations count, for moving a Pyx across a text-oriented
// boundary (test fixtures, CLI file I/O) without touching the canonical
// 585-byte wire layout pyx.Serialize produces.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"math/big"

	"vdfmint/pyx"

	"vdfmint/internal/codec"
	"vdfmint/internal/vdferr"
)

// maxDecodedFieldBytes is the post-decode size cap spec.md §6 places on y
// and proof.
const maxDecodedFieldBytes = 512

// Envelope is the wire shape of the test/interchange JSON document. PyxID
// is optional on input (recomputed, never trusted) and always populated on
// output.
type Envelope struct {
	PyxID      string `json:"pyxId,omitempty"`
	MinterID   string `json:"minterId"`
	Challenge  string `json:"challenge"`
	Iterations uint64 `json:"iterations"`
	Y          string `json:"y"`
	Proof      string `json:"proof"`
}

// Encode renders p as an Envelope ready for json.Marshal, Base64-encoding
// the byte fields and stamping the recomputed pyxId.
func Encode(p *pyx.Pyx) Envelope {
	id := p.ID()
	return Envelope{
		PyxID:      base64.StdEncoding.EncodeToString(id[:]),
		MinterID:   base64.StdEncoding.EncodeToString(p.MinterID()),
		Challenge:  base64.StdEncoding.EncodeToString(p.Challenge()),
		Iterations: p.Iterations(),
		Y:          base64.StdEncoding.EncodeToString(codec.IntToBytes(p.Y())),
		Proof:      base64.StdEncoding.EncodeToString(codec.IntToBytes(p.Proof())),
	}
}

// Marshal is Encode followed by json.Marshal.
func Marshal(p *pyx.Pyx) ([]byte, error) {
	return json.Marshal(Encode(p))
}

// Decode validates e per spec.md §6's rules and constructs a Pyx from it:
// all required fields present, iterations a positive integer, and y/proof
// not exceeding 512 bytes after Base64 decoding. The pyxId field, if
// present, is never trusted — it is not consulted here; callers compare it
// against the freshly constructed Pyx's own ID() if they want to check it.
func Decode(e Envelope) (*pyx.Pyx, error) {
	if e.MinterID == "" || e.Challenge == "" || e.Y == "" || e.Proof == "" {
		return nil, vdferr.Invalid("envelope: minterId, challenge, y, and proof are required")
	}
	if e.Iterations < 1 {
		return nil, vdferr.Invalid("envelope: iterations must be a positive integer")
	}

	minterID, err := base64.StdEncoding.DecodeString(e.MinterID)
	if err != nil {
		return nil, vdferr.Invalid("envelope: minterId is not valid base64")
	}
	challenge, err := base64.StdEncoding.DecodeString(e.Challenge)
	if err != nil {
		return nil, vdferr.Invalid("envelope: challenge is not valid base64")
	}
	yBytes, err := base64.StdEncoding.DecodeString(e.Y)
	if err != nil {
		return nil, vdferr.Invalid("envelope: y is not valid base64")
	}
	proofBytes, err := base64.StdEncoding.DecodeString(e.Proof)
	if err != nil {
		return nil, vdferr.Invalid("envelope: proof is not valid base64")
	}
	if len(yBytes) > maxDecodedFieldBytes {
		return nil, vdferr.Invalid("envelope: y exceeds 512 bytes after decoding")
	}
	if len(proofBytes) > maxDecodedFieldBytes {
		return nil, vdferr.Invalid("envelope: proof exceeds 512 bytes after decoding")
	}

	y := new(big.Int).SetBytes(yBytes)
	proofVal := new(big.Int).SetBytes(proofBytes)

	return pyx.New(minterID, challenge, e.Iterations, y, proofVal)
}

// Unmarshal parses data as JSON into an Envelope and then Decodes it.
func Unmarshal(data []byte) (*pyx.Pyx, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, vdferr.Invalid("envelope: malformed JSON: " + err.Error())
	}
	return Decode(e)
}
