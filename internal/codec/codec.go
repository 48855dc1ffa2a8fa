// Package codec converts between fixed-width big-endian byte strings and the
// integers the VDF pipeline passes between its stages. Every field that
// crosses a component boundary — the base x, the output y, the proof π, the
// iteration count T — goes through here so that byte layout stays in one
// place.
package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// BytesToInt interprets b as a big-endian unsigned integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes emits the minimum-length big-endian encoding of v (no leading
// zero byte, matching intBytes in spec.md §4.6.1).
func IntToBytes(v *big.Int) []byte {
	return v.Bytes()
}

// IntToBytesWidth left-pads v's big-endian encoding with zeros to exactly
// width bytes. It returns an error if v does not fit in width bytes.
func IntToBytesWidth(v *big.Int, width int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("codec: negative value cannot be encoded")
	}
	raw := v.Bytes()
	if len(raw) > width {
		return nil, fmt.Errorf("codec: value needs %d bytes, width is %d", len(raw), width)
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}

// U64BE returns the 8-byte big-endian encoding of n.
func U64BE(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

// U32BE returns the 4-byte big-endian encoding of n.
func U32BE(n uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, n)
	return buf
}

// Concat joins byte slices with no separators.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
