// Package serrors defines the semantic error kinds returned by the use-case
// services. A kind classifies an outcome (not found, conflict, forbidden, ...)
// while the wrapped error and message keep the concrete cause. Callers match
// kinds with errors.Is and map them to their own representation (e.g. HTTP
// status codes) without parsing messages.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel classifying an error into the business failure taxonomy.
type Kind string

// Error implements the error interface so kinds can be used as errors.Is targets.
func (k Kind) Error() string { return string(k) }

var (
	// ErrInvalid marks an entity invariant violation: empty required field,
	// non-positive amount or area, malformed tax identifier.
	ErrInvalid = Kind("INVALID")
	// ErrNotFound marks a missing entity, or one outside the requester's
	// authorized view when existence must not leak.
	ErrNotFound = Kind("NOT_FOUND")
	// ErrConflict marks a scoped uniqueness violation or an already-existing
	// relation (duplicate tax id, duplicate email, property already listed).
	ErrConflict = Kind("CONFLICT")
	// ErrForbidden marks an actor that was resolved but lacks the role or
	// tenant relationship the operation requires.
	ErrForbidden = Kind("FORBIDDEN")
	// ErrUnauthenticated marks an actor that could not be resolved at all.
	ErrUnauthenticated = Kind("UNAUTHENTICATED")
	// ErrInternal marks unexpected faults that carry no business meaning.
	ErrInternal = Kind("INTERNAL")
)

// Error couples a Kind with a human-readable message and an optional cause.
// errors.Is matches both the kind and anything in the cause chain.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a semantic error that also records the concrete cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	if e.msg == "" {
		return e.kind.Error()
	}

	return e.msg
}

// Unwrap exposes the cause chain to errors.Unwrap.
func (e *Error) Unwrap() error { return e.cause }

// Is matches the kind sentinel in addition to the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if k, ok := target.(Kind); ok {
		return e.kind == k
	}

	return e.cause != nil && errors.Is(e.cause, target)
}

// Kind returns the semantic kind of the error.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause chain.
func (e *Error) Message() string { return e.msg }

// KindOf extracts the semantic kind from an error chain. It returns
// ErrInternal for plain errors that carry no kind.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.kind
	}

	return ErrInternal
}
