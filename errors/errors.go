package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the single error type crossing package boundaries. Code is the
// HTTP status the failure maps to: 400 validation, 403 transcripts disabled,
// 404 no transcript, 429 rate limited, 500 upstream provider failure.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func E(op string, err error, message string, code int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidInput(op string, err error, message string) *AppError {
	return E(op, err, message, http.StatusBadRequest)
}

func Forbidden(op string, err error, message string) *AppError {
	return E(op, err, message, http.StatusForbidden)
}

func NotFound(op string, err error, message string) *AppError {
	return E(op, err, message, http.StatusNotFound)
}

func RateLimited(op string, message string) *AppError {
	return E(op, nil, message, http.StatusTooManyRequests)
}

func Internal(op string, err error, message string) *AppError {
	return E(op, err, message, http.StatusInternalServerError)
}

// Is reports whether any error in err's chain matches target. Re-exported so
// callers do not need a second errors import next to this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Code extracts the HTTP status carried by err, defaulting to 500.
func Code(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return Code(err) == http.StatusNotFound
}
