package common

import (
	"errors"
	"strings"
)

// Error kinds. Every failure surfaced to the client's presentation layer
// matches exactly one of these with errors.Is.
var (
	// ErrValidation is a local check failure (e.g. empty required field).
	// No network call is attempted.
	ErrValidation = errors.New("validation error")

	// ErrPrecondition means the operation needs a prior state first
	// (e.g. insight before the entry is saved).
	ErrPrecondition = errors.New("precondition failed")

	// ErrNotFound means the server does not know the identifier.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the credential is missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork is a transport-level failure or timeout.
	ErrNetwork = errors.New("network error")

	// ErrServer means the server was reachable but rejected the operation.
	ErrServer = errors.New("server error")
)

// Server-side conditions.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrInternal      = errors.New("internal error")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
)

var kinds = []error{ErrValidation, ErrPrecondition, ErrNotFound, ErrUnauthorized, ErrNetwork, ErrServer}

// Error pairs an error kind with an optional human-readable detail, usually
// the message the server attached to its rejection.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

// NewError returns an *Error of the given kind carrying detail.
func NewError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// WrapError returns an *Error of the given kind caused by err.
func WrapError(kind error, err error, detail string) *Error {
	return &Error{Kind: kind, Err: err, Detail: detail}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Detail returns the server-supplied detail carried by err, or "".
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// MessageOr returns the detail carried by err, falling back to generic.
func MessageOr(err error, generic string) string {
	if d := Detail(err); d != "" {
		return d
	}
	return generic
}

// KindOf returns the kind sentinel err matches. Errors outside the taxonomy
// are reported as ErrServer; nil yields nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrServer
}
