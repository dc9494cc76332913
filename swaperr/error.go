// Package swaperr defines the error taxonomy shared by every layer of the
// swap core, from script construction up through the node façade.
package swaperr

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind tags an Error with the class of failure that produced it. Every
// operation in this module returns either a successful artifact or an
// *Error carrying one of these kinds; no phase retries internally.
type Kind uint8

const (
	// TransactionNotComplete is raised when a pipeline stage is invoked
	// on a transaction that hasn't reached the prerequisite stage (e.g.
	// finalizing before signing).
	TransactionNotComplete Kind = iota

	// MismatchCommonParameters is raised during setup verification when
	// the two parties' t_0/t_1 disagree.
	MismatchCommonParameters

	// MissingValue is raised when a façade method is called before its
	// prerequisite state (params, setup) has been generated.
	MissingValue

	// InvalidSignature is raised when a counterparty's partial signature
	// fails ECDSA verification against the expected sighash and pubkey.
	InvalidSignature

	// BitcoinEncoding is raised on malformed transaction hex, scripts,
	// or witness data.
	BitcoinEncoding

	// EcdsaError is raised by the curve adapter on malformed scalars,
	// points, or signatures.
	EcdsaError

	// RandError is raised when the caller-supplied randomness source
	// fails to fill a buffer.
	RandError

	// HexError is raised on malformed hex-encoded input.
	HexError
)

func (k Kind) String() string {
	switch k {
	case TransactionNotComplete:
		return "transaction not complete"
	case MismatchCommonParameters:
		return "mismatched common parameters"
	case MissingValue:
		return "missing value"
	case InvalidSignature:
		return "invalid signature"
	case BitcoinEncoding:
		return "bitcoin encoding error"
	case EcdsaError:
		return "ecdsa error"
	case RandError:
		return "rand error"
	case HexError:
		return "hex error"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by this module. It carries a
// machine-checkable Kind so that swapnode can map errors into an opaque
// user-visible form without string-matching, plus the underlying cause
// (captured with a stack trace via go-errors/errors at the site it was
// first raised).
type Error struct {
	Kind Kind
	err  *goerrors.Error
}

// New raises a new Error of the given kind, wrapping msg.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, err: goerrors.New(msg)}
}

// Wrap raises a new Error of the given kind around an existing cause,
// capturing a stack trace at this call site.
func Wrap(kind Kind, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, err: goerrors.Wrap(cause, 1)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err.Error())
}

// Unwrap supports errors.Is / errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err.Err
}

// ErrorStack returns the formatted stack trace captured when the error was
// first raised, useful for debug logging at the swapnode boundary.
func (e *Error) ErrorStack() string {
	if e == nil {
		return ""
	}
	return e.err.ErrorStack()
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if ae, ok := err.(*Error); ok {
		e = ae
	} else {
		return false
	}
	return e.Kind == kind
}
