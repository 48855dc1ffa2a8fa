// Package vdfhash provides the single hash primitive used across the VDF
// pipeline: SHA-256 over a contiguous byte sequence. Every hash in this
// module — the base derivation, the Miller-Rabin witnesses, the pyxId —
// goes through Sum256 so there is exactly one place that decides which hash
// function the protocol uses. The prime-oracle seed is not a hash: it is a
// slice of y's leading bytes (see primeoracle.Seed).
package vdfhash

import "crypto/sha256"

// Sum256 hashes the concatenation of parts with SHA-256 and returns the
// 32-byte digest. There is no domain separation beyond the positioning of
// the fields the caller passes in.
func Sum256(parts ...[]byte) [32]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
