// Package errs defines the closed set of failure kinds shared across layers
// and the uniform error value that carries them.
package errs

import (
	"errors"
	"fmt"
)

// Kind tags a failure with one of the known categories. The HTTP layer maps
// each kind to exactly one status code; everything else is Unhandled.
type Kind int

const (
	// Unhandled is any failure not claimed by another kind (environment faults).
	Unhandled Kind = iota
	// Validation indicates malformed input, with per-field details.
	Validation
	// DuplicateKey indicates a store uniqueness constraint violation.
	DuplicateKey
	// InvalidCredentials indicates a failed login. Deliberately does not say
	// whether the account exists.
	InvalidCredentials
	// MissingToken indicates an absent or malformed Authorization header.
	MissingToken
	// InvalidToken indicates an unparseable token or a bad signature.
	InvalidToken
	// Expired indicates a token past its expiry.
	Expired
	// StaleIdentity indicates a valid token whose subject no longer exists.
	StaleIdentity
	// Forbidden indicates an ownership check denial.
	Forbidden
	// NotFound indicates a missing entity.
	NotFound
	// RateLimited indicates a temporary login lockout.
	RateLimited
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case DuplicateKey:
		return "duplicate_key"
	case InvalidCredentials:
		return "invalid_credentials"
	case MissingToken:
		return "missing_token"
	case InvalidToken:
		return "invalid_token"
	case Expired:
		return "expired"
	case StaleIdentity:
		return "stale_identity"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case RateLimited:
		return "rate_limited"
	default:
		return "unhandled"
	}
}

// FieldError reports a single violated field constraint.
type FieldError struct {
	Field   string
	Message string
}

// Error is the uniform failure value passed between layers. Message is safe
// to return to clients; the wrapped cause is for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the internal cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// New builds a tagged error with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an internal cause without leaking it into Message.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// Invalid builds a Validation error carrying every collected field violation.
func Invalid(fields ...FieldError) *Error {
	return &Error{Kind: Validation, Message: "Validation failed", Fields: fields}
}

// KindOf returns the kind carried by err, or Unhandled for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unhandled
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// From returns the tagged error inside err, or nil if there is none.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
