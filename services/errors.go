package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the HTTP layer can map it to a status.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindUpstream   ErrorKind = "UPSTREAM_ERROR"
	KindTimeout    ErrorKind = "TIMEOUT_ERROR"
	KindInternal   ErrorKind = "INTERNAL_ERROR"
)

// Error is the tagged error returned by every service operation.
type Error struct {
	Kind    ErrorKind
	Message string
	// Status is the upstream HTTP status, zero for transport failures.
	Status int
	// Details is a human readable message extracted from the upstream body.
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ValidationError reports a missing or malformed input.
func ValidationError(message string) *Error {
	return newError(KindValidation, message, nil)
}

// upstreamStatusError reports a non-2xx upstream response.
func upstreamStatusError(message string, status int, details string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Status: status, Details: details}
}

// upstreamTransportError reports a failure to reach an upstream at all.
func upstreamTransportError(message string, err error) *Error {
	return newError(KindUpstream, message, err)
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
