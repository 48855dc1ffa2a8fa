package vdferr

import (
	"errors"
	"io"
	"testing"
)

func TestKindMapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{InvalidArgument, KindInvalidArgument},
		{MalformedPyx, KindMalformedPyx},
		{ProofMismatch, KindProofMismatch},
		{Cancelled, KindCancelled},
		{Internal, KindInternal},
		{io.EOF, KindInternal},
	}
	for _, c := range cases {
		if got := Kind(c.err); got != c.want {
			t.Errorf("Kind(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestWrapMalformedPreservesSentinel(t *testing.T) {
	wrapped := WrapMalformed(io.ErrUnexpectedEOF, "deserialize")
	if !errors.Is(wrapped, MalformedPyx) {
		t.Fatalf("wrapped error does not satisfy errors.Is(MalformedPyx)")
	}
}

func TestInvalidPreservesSentinel(t *testing.T) {
	wrapped := Invalid("minterId must be 32 bytes")
	if !errors.Is(wrapped, InvalidArgument) {
		t.Fatalf("wrapped error does not satisfy errors.Is(InvalidArgument)")
	}
}

func TestErrorKindString(t *testing.T) {
	if ErrorKind(99).String() != "None" {
		t.Fatalf("unknown kind should stringify to None")
	}
	if KindProofMismatch.String() != "ProofMismatch" {
		t.Fatalf("ErrorKind.String() mismatch")
	}
}
