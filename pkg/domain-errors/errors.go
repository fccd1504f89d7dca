// Package domainerrors carries coded errors across layer boundaries. Services
// and the transition engine return these so callers can branch on the Code
// without string matching. Stores speak pkg/platform/sentinel instead; the
// layer above translates.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for programmatic handling.
type Code string

const (
	// CodeValidation marks malformed input terms. Fatal to the single
	// request, never to the case.
	CodeValidation Code = "validation"
	// CodeInvalidInput marks values rejected at a parse boundary.
	CodeInvalidInput Code = "invalid_input"
	// CodeUnauthorized marks an actor that is not permitted to drive the
	// requested transition.
	CodeUnauthorized Code = "unauthorized"
	// CodePreconditionNotMet marks missing/expired documents, hash
	// mismatches, and violated date or amount windows.
	CodePreconditionNotMet Code = "precondition_not_met"
	// CodeInvalidTransition marks an event that is not legal from the
	// case's current state.
	CodeInvalidTransition Code = "invalid_transition"
	// CodeAlreadyInState marks an idempotent retry of an event the case
	// has already absorbed.
	CodeAlreadyInState Code = "already_in_state"
	// CodeCaseBusy marks contention on a case's exclusive section.
	CodeCaseBusy Code = "case_busy"
	// CodeNotFound marks a missing case or document.
	CodeNotFound Code = "not_found"
	// CodeConflict marks an attempt to create something that already exists.
	CodeConflict Code = "conflict"
	// CodeTimeout marks work aborted by a caller-supplied deadline.
	CodeTimeout Code = "timeout"
	// CodeInvariantViolation marks a programming error: a snapshot that
	// should never have existed. Processing of that case must halt.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal"
)

// Fatal reports whether errors with this code must halt processing of the
// affected case rather than being returned as a recoverable rejection.
func (c Code) Fatal() bool {
	return c == CodeInvariantViolation
}

// Error is the concrete coded error. Compare with HasCode, not type asserts.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error from a format string.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. A nil err yields
// nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		de = nil
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// error carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
