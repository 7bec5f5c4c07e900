package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried on AppError so callers can branch without string
// matching.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeStorage    = "storage_error"
	CodeUpload     = "upload_error"
)

// AppError is the application error taxonomy surfaced to HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
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

// NewValidationError creates a bad-input error (400)
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewNotFoundError creates an unknown-id error (404)
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewConflictError creates a duplicate-id error (409)
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewStorageError creates a backend failure error (500)
func NewStorageError(err error) *AppError {
	return &AppError{
		Code:       CodeStorage,
		Message:    "storage backend error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUploadError creates a file transfer error (502)
func NewUploadError(err error) *AppError {
	return &AppError{
		Code:       CodeUpload,
		Message:    "file upload failed",
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StatusOf returns the HTTP status for err, defaulting to 500 for errors
// outside the taxonomy.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
