package common

import "errors"

// Machine codes for the domain error family. Callers pattern-match on these
// to decide whether an error is recoverable.
const (
	// CodeInvalidPrice marks a catalogue price supplied in a form that is
	// not an exact decimal. Fatal to that construction.
	CodeInvalidPrice = "INVALID_PRICE"
	// CodeProductNotFound marks a cart add with an unknown product code.
	// Recoverable: the caller reports it and continues the session.
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
)

// AppError represents a domain error with an attached machine code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsAppError checks whether the error is an AppError.
func IsAppError(err error) bool {
	var target *AppError
	return errors.As(err, &target)
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var target *AppError
	if !errors.As(err, &target) {
		return false
	}
	return target.Code == code
}
