package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
	CodeTimeout     = "TIMEOUT"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
	CodeTooLarge    = "PAYLOAD_TOO_LARGE"
)

// AppError is an error with the HTTP outcome it maps to. Err is never shown to
// clients except as details.cause on 5xx responses.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func Validation(message string, details map[string]any) *AppError {
	e := New(CodeValidation, message, http.StatusUnprocessableEntity)
	e.Details = details
	return e
}

// ValidationField reports a single offending field.
func ValidationField(message, field, reason string) *AppError {
	return Validation(message, map[string]any{
		"fields": []map[string]string{
			{"field": field, "message": reason},
		},
	})
}

// Internal wraps a failure from a collaborator. The HTTP layer exposes err under
// details.cause.
func Internal(message string, err error) *AppError {
	e := New(CodeInternal, message, http.StatusInternalServerError)
	e.Err = err
	return e
}

// Timeout is the answer to a request that ran past its deadline before responding.
func Timeout(message string) *AppError {
	return New(CodeTimeout, message, http.StatusServiceUnavailable)
}

func Unavailable(dependency string) *AppError {
	return New(CodeUnavailable, fmt.Sprintf("%s is temporarily unavailable", dependency), http.StatusServiceUnavailable)
}

// AsAppError finds the AppError in err's chain. Anything else becomes an internal
// error wrapping err.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
