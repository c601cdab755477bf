// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the tuplepool
// library. Every failure a pool reports is a programming-error signal, not
// a transient condition; nothing here is retried internally.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four failure kinds. Structured errors unwrap to
// these, so errors.Is works across layers.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPoolExhausted   = errors.New("pool exhausted")
	ErrInvalidPointer  = errors.New("invalid pointer")
	ErrUnknownID       = errors.New("unknown id")
	ErrInternal        = errors.New("internal error")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodePoolExhausted
	ErrCodeInvalidPointer
	ErrCodeUnknownID
	ErrCodeInternal
)

// sentinel maps a code to its unwrap target.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodePoolExhausted:
		return ErrPoolExhausted
	case ErrCodeInvalidPointer:
		return ErrInvalidPointer
	case ErrCodeUnknownID:
		return ErrUnknownID
	case ErrCodeInternal:
		return ErrInternal
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error onto its sentinel so errors.Is(err, ErrInvalidPointer)
// holds for any invalid-pointer report regardless of which layer raised it.
func (e *Error) Unwrap() error { return e.Code.sentinel() }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from err, ErrCodeOK for nil and
// ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// PointerFault classifies why a handle failed validation.
type PointerFault string

const (
	FaultNone  PointerFault = ""
	FaultNull  PointerFault = "null"
	FaultStale PointerFault = "stale"
	FaultRange PointerFault = "out-of-range"
)

// FaultOf extracts the pointer fault recorded on an invalid-pointer error,
// FaultNone when err carries no classification.
func FaultOf(err error) PointerFault {
	var e *Error
	if !errors.As(err, &e) {
		return FaultNone
	}
	if f, ok := e.Context["fault"].(PointerFault); ok {
		return f
	}
	return FaultNone
}
