// Package apperr defines the application error taxonomy.
//
// Every failure that crosses a service boundary is wrapped in one of the
// kinds below; pkg/response maps each kind to an HTTP status at the edge.
// Use errors.Is with the exported sentinels to branch on kind:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — missing entity by key.
	ErrNotFound = errors.New("not found")
	// ErrConflict — duplicate unique key (e.g. username already taken).
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized — failed, absent, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden — authenticated but role not in the required set.
	ErrForbidden = errors.New("forbidden")
	// ErrInternal — storage or procedure failure not otherwise classified.
	ErrInternal = errors.New("internal error")
	// ErrResourceExhausted — bounded wait for a pooled connection expired.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// Error carries a kind sentinel plus a human-readable message. The message
// is safe to surface to the caller; the wrapped cause is for logs only.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Is makes errors.Is(err, apperr.ErrX) match on kind.
func (e *Error) Is(target error) bool { return target == e.kind }

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Message is the caller-safe description.
func (e *Error) Message() string { return e.msg }

func newError(kind error, msg string, cause ...error) *Error {
	e := &Error{kind: kind, msg: msg}
	if len(cause) > 0 {
		e.cause = cause[0]
	}
	return e
}

func NotFound(msg string, cause ...error) *Error { return newError(ErrNotFound, msg, cause...) }

func Conflict(msg string, cause ...error) *Error { return newError(ErrConflict, msg, cause...) }

func Unauthorized(msg string, cause ...error) *Error {
	return newError(ErrUnauthorized, msg, cause...)
}

func Forbidden(msg string, cause ...error) *Error { return newError(ErrForbidden, msg, cause...) }

func Internal(msg string, cause ...error) *Error { return newError(ErrInternal, msg, cause...) }

func ResourceExhausted(msg string, cause ...error) *Error {
	return newError(ErrResourceExhausted, msg, cause...)
}

// MessageFor returns the caller-safe message of err, or fallback when err
// does not carry one.
func MessageFor(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	return fallback
}
