package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest       ErrorKind = "bad_request"
	KindNotFound         ErrorKind = "not_found"
	KindTooLarge         ErrorKind = "too_large"
	KindMethodNotAllowed ErrorKind = "method_not_allowed"
	KindInternal         ErrorKind = "internal"
)

// Client-facing messages.
const (
	MsgMissingFile      = "No file uploaded or filename is missing"
	MsgMissingUserID    = "userId is required"
	MsgNotAudio         = "Only audio files are accepted"
	MsgUploadFailed     = "An error occurred during upload and transcription"
	MsgDownloadFailed   = "An error occurred while downloading transcriptions"
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
	MsgInternal         = "Internal server error"
)

// FileTooLargeMessage is the 413 message for an upload limit of maxBytes,
// e.g. "File exceeds the maximum size of 10MB".
func FileTooLargeMessage(maxBytes int64) string {
	size := fmt.Sprintf("%d bytes", maxBytes)
	switch {
	case maxBytes >= 1<<20 && maxBytes%(1<<20) == 0:
		size = fmt.Sprintf("%dMB", maxBytes>>20)
	case maxBytes >= 1<<10 && maxBytes%(1<<10) == 0:
		size = fmt.Sprintf("%dKB", maxBytes>>10)
	}
	return "File exceeds the maximum size of " + size
}

// APIError is an error with an HTTP status. Clients only see Message, in the
// shape of ErrorBody.
type APIError struct {
	Kind      ErrorKind
	Message   string
	RequestID string
	// Cause is logged, never sent.
	Cause error
}

// ErrorBody is the JSON body of every failed response.
type ErrorBody struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"userId is required"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Body returns the response body for the error.
func (e *APIError) Body() ErrorBody {
	return ErrorBody{Success: false, Error: e.Message}
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewTooLargeError creates a payload too large error
func NewTooLargeError(message string) *APIError {
	return &APIError{
		Kind:    KindTooLarge,
		Message: message,
	}
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError() *APIError {
	return &APIError{
		Kind:    KindMethodNotAllowed,
		Message: MsgMethodNotAllowed,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: MsgNotFound,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// WrapError wraps an existing error with API error context
func WrapError(err error, kind ErrorKind, message string) *APIError {
	if err == nil {
		return nil
	}
	return &APIError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}
