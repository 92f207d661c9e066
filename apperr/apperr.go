package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the API can report.
// Nothing in the computation core produces these; they all originate at
// the boundary with external collaborators or request parsing.
type Kind int

const (
	// Validation covers malformed request input that cannot be coerced.
	Validation Kind = iota
	// Collaborator covers record-store or identity failures; the
	// submitted document is preserved so the caller can retry.
	Collaborator
	// MissingSnapshot marks a saved invoice that has no reconstructable
	// snapshot and therefore cannot be edited or printed.
	MissingSnapshot
	// TransientRetry marks an operation that failed after bounded
	// retries against a not-yet-ready backend.
	TransientRetry
)

// Error carries a kind plus a human-readable message. Messages are what
// the user sees; they are never silently swallowed.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause while keeping the user-facing message clean.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from err, reporting ok=false for foreign errors.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}
