package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or key is absent in the store.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrStoreUnavailable means that the expiring store could not be reached or the call failed.
	// It is transient: the caller may retry on its own schedule.
	ErrStoreUnavailable = "store_unavailable"
)

// BrowserError represents an error within the context of serverbrowser services.
type BrowserError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewBrowserError creates a new BrowserError.
func NewBrowserError(code string, message string, inner error) *BrowserError {
	return &BrowserError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *BrowserError {
	browserInner := ToBrowserError(inner)
	if browserInner != nil {
		return browserInner
	}

	return NewBrowserError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *BrowserError {
	browserInner := ToBrowserError(inner)
	if browserInner != nil {
		return browserInner
	}

	return NewBrowserError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *BrowserError {
	browserInner := ToBrowserError(inner)
	if browserInner != nil {
		return browserInner
	}

	return NewBrowserError(ErrBadParameter, message, inner)
}

// NewStoreUnavailableError wraps a backend failure (connection loss, timeout, closed client).
// An existing BrowserError is passed through unchanged.
func NewStoreUnavailableError(message string, inner error) *BrowserError {
	browserInner := ToBrowserError(inner)
	if browserInner != nil {
		return browserInner
	}

	return NewBrowserError(ErrStoreUnavailable, message, inner)
}

func (e BrowserError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e BrowserError) Unwrap() error {
	return e.Inner
}

// ToBrowserError returns a pointer to a serverbrowser error, or nil if it is not a serverbrowser error.
func ToBrowserError(err error) *BrowserError {
	var e *BrowserError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToBrowserErrorCode returns the code of the error, if available.
func ToBrowserErrorCode(err error) string {
	browserErr := ToBrowserError(err)
	if browserErr != nil {
		return browserErr.Code
	}
	return ""
}

func IsBrowserError(err error, code string) bool {
	browserErr := ToBrowserError(err)
	if browserErr != nil {
		return browserErr.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsBrowserError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsBrowserError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsBrowserError(err, ErrBadParameter)
}

func IsStoreUnavailableError(err error) bool {
	return IsBrowserError(err, ErrStoreUnavailable)
}
