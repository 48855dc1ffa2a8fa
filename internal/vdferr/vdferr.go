// Package vdferr defines the error taxonomy spec.md §7 requires: a small set
// of sentinel ErrorKind values that every public entry point (Mint, Verify,
// Serialize, Deserialize) reports through, wrapped with context via
// github.com/pkg/errors where a caller needs a stack trace to debug a
// malformed artifact.
package vdferr

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind classifies the five outcomes spec.md §7 names.
type ErrorKind int

const (
	// KindNone is the zero value; no error occurred.
	KindNone ErrorKind = iota
	// KindInvalidArgument covers wrong field lengths, T < 1, and other
	// caller-supplied malformed inputs.
	KindInvalidArgument
	// KindMalformedPyx covers structural or semantic (L re-derivation)
	// failures while parsing a serialized Pyx.
	KindMalformedPyx
	// KindProofMismatch covers a structurally well-formed Pyx whose
	// Wesolowski identity does not hold.
	KindProofMismatch
	// KindCancelled covers caller-initiated cancellation during Mint.
	KindCancelled
	// KindInternal covers an invariant violation in the arithmetic façade;
	// this should never occur and is fatal if it does.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindMalformedPyx:
		return "MalformedPyx"
	case KindProofMismatch:
		return "ProofMismatch"
	case KindCancelled:
		return "Cancelled"
	case KindInternal:
		return "Internal"
	default:
		return "None"
	}
}

// Sentinel errors, one per kind, suitable for errors.Is.
var (
	InvalidArgument = errors.New("vdfmint: invalid argument")
	MalformedPyx    = errors.New("vdfmint: malformed pyx")
	ProofMismatch   = errors.New("vdfmint: proof mismatch")
	Cancelled       = errors.New("vdfmint: cancelled")
	Internal        = errors.New("vdfmint: internal invariant violation")
)

// Kind maps a sentinel (or an error wrapping one) to its ErrorKind. It
// returns KindNone if err is nil and KindInternal if err does not wrap any
// of the known sentinels — an unrecognized error is, by definition, not one
// the caller can structurally handle, so treating it as Internal keeps
// Kind total.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, InvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, MalformedPyx):
		return KindMalformedPyx
	case errors.Is(err, ProofMismatch):
		return KindProofMismatch
	case errors.Is(err, Cancelled):
		return KindCancelled
	default:
		return KindInternal
	}
}

// WrapMalformed wraps err as a MalformedPyx with additional context,
// preserving a stack trace via pkg/errors for structural parse failures
// (truncated input, non-canonical encoding, L re-derivation divergence).
func WrapMalformed(err error, context string) error {
	if err == nil {
		return pkgerrors.Wrap(MalformedPyx, context)
	}
	return pkgerrors.Wrap(MalformedPyx, fmt.Sprintf("%s: %v", context, err))
}

// Invalid formats an InvalidArgument error with context.
func Invalid(context string) error {
	return pkgerrors.Wrap(InvalidArgument, context)
}
