package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Validation signals a malformed or missing input field. The message always
// names the offending field so clients can correct their input.
func Validation(field, message string) *AppError {
	return New(http.StatusUnprocessableEntity, fmt.Sprintf("%s: %s", field, message), nil)
}

// UnsupportedMedia signals a rejected resume file type.
func UnsupportedMedia(message string) *AppError {
	return New(http.StatusUnsupportedMediaType, message, nil)
}

// Storage signals a content-store or record-store I/O failure. The wrapped
// error is logged server-side, never exposed to clients.
func Storage(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
