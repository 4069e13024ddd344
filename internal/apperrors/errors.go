// Package apperrors defines the failure kinds returned by the calculator and
// text operations and the transport-level codes used by the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

const (
	// CodeInvalidArgument: an input's type or shape does not match the contract.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNegativeInput: a value requiring non-negativity is negative.
	CodeNegativeInput Code = "NEGATIVE_INPUT"
	// CodeNotInteger: a value requiring integrality is fractional.
	CodeNotInteger Code = "NOT_INTEGER"
	// CodeDivisionByZero: divisor is exactly zero.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	// CodeInvalidCharacter: a single-character argument is not one character long.
	CodeInvalidCharacter Code = "INVALID_CHARACTER"

	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal          Code = "INTERNAL"
)

// Sentinels for errors.Is matching against an *OpError's code.
var (
	ErrInvalidArgument  = &OpError{Code: CodeInvalidArgument}
	ErrNegativeInput    = &OpError{Code: CodeNegativeInput}
	ErrNotInteger       = &OpError{Code: CodeNotInteger}
	ErrDivisionByZero   = &OpError{Code: CodeDivisionByZero}
	ErrInvalidCharacter = &OpError{Code: CodeInvalidCharacter}
)

// OpError is a failure raised by an operation. Message is human readable and
// is surfaced to HTTP clients verbatim.
type OpError struct {
	Code    Code
	Op      string
	Message string
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: [%s] %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is an *OpError with the same code.
func (e *OpError) Is(target error) bool {
	t, ok := target.(*OpError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates an OpError for the named operation.
func New(code Code, op, message string) *OpError {
	return &OpError{Code: code, Op: op, Message: message}
}

// CodeOf returns the code of the first *OpError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return CodeInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Message
	}
	return err.Error()
}
