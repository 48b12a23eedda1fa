package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so transports can map them without string matching.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindNotFound        ErrorKind = "not_found"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindInvalidState    ErrorKind = "invalid_state"
	KindExternalFailure ErrorKind = "external_failure"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyPaid     = errors.New("already paid")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// DomainError carries a kind, a human readable message and an optional cause.
// Partial is set when money already moved before the failure.
type DomainError struct {
	Kind     ErrorKind
	Message  string
	Err      error
	Partial  bool
	ChargeID string
}

func NewDomainError(kind ErrorKind, message string, err error) *DomainError {
	return &DomainError{Kind: kind, Message: message, Err: err}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first DomainError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

func InvalidInput(message string) *DomainError {
	return NewDomainError(KindInvalidInput, message, ErrInvalidArgument)
}

func NotFound(message string) *DomainError {
	return NewDomainError(KindNotFound, message, ErrNotFound)
}

func Unauthorized(message string) *DomainError {
	return NewDomainError(KindUnauthorized, message, ErrForbidden)
}

func InvalidState(message string, err error) *DomainError {
	return NewDomainError(KindInvalidState, message, err)
}

func ExternalFailure(message string, err error) *DomainError {
	return NewDomainError(KindExternalFailure, message, err)
}

// PartialFailure marks an external failure that happened after the charge succeeded.
func PartialFailure(message, chargeID string, err error) *DomainError {
	return &DomainError{Kind: KindExternalFailure, Message: message, Err: err, Partial: true, ChargeID: chargeID}
}
