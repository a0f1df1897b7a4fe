package pkcs1

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindIntegerTooLarge: a requested fixed octet-string width cannot hold
	// the integer's magnitude. A codec precondition failure, never a silent
	// truncation.
	KindIntegerTooLarge Kind = "IntegerTooLarge"

	// KindOutOfRange: a primitive's representative argument is not a valid
	// residue modulo n (negative or >= n).
	KindOutOfRange Kind = "OutOfRange"
)

// Error is the library's structured error type.
//
// Op names the operation that failed (e.g. I2OSP, RSAEP). Representative
// names the argument that violated a range precondition ("message",
// "ciphertext", "signature"); it is empty for codec errors.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind           Kind
	Op             string
	Representative string
	Message        string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("pkcs1: %s: %s", e.Op, e.Message)
}

func newError(kind Kind, op, representative, msg string) error {
	return &Error{Kind: kind, Op: op, Representative: representative, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsIntegerTooLarge reports whether err is an IntegerTooLarge codec error.
func IsIntegerTooLarge(err error) bool { return IsKind(err, KindIntegerTooLarge) }

// IsOutOfRange reports whether err is an OutOfRange primitive error.
func IsOutOfRange(err error) bool { return IsKind(err, KindOutOfRange) }
