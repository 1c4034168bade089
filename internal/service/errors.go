package service

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the HTTP layer can choose a response without
// looking at error text.
type Kind int

const (
	KindPersistence Kind = iota
	KindValidation
	KindAuthentication
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "persistence"
	}
}

// Error is returned by every service operation that fails. Msg is safe to show
// to users; Err carries the underlying cause for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailTaken         = errors.New("email already registered")
)

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func persistenceError(msg string, err error) error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf reports the Kind of err; errors not produced by this package are
// treated as persistence failures.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindPersistence
}

// PublicMessage returns text that can be shown to the user for err.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Kind != KindPersistence {
		return se.Msg
	}
	return "something went wrong, please try again"
}
