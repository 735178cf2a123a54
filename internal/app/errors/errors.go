package errors

import (
	"fmt"
)

// Pipeline step errors. Services wrap the underlying cause with Step so callers
// can tell which stage failed with errors.Is.
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Upload validation errors
	ErrMissingFile      = New("no file uploaded or filename is missing")
	ErrMissingUserID    = New("userId is required")
	ErrUnsupportedMedia = New("only audio files are accepted")
	ErrFileTooLarge     = New("file exceeds the maximum size")

	// Pipeline errors
	ErrSpoolFailed         = New("temporary file write failed")
	ErrStorageFailed       = New("object storage write failed")
	ErrObjectExists        = New("object already exists")
	ErrTranscriptionFailed = New("transcription failed")

	// Database errors
	ErrDatabaseConnection = New("database connection failed")
	ErrQueryFailed        = New("query failed")
	ErrScanFailed         = New("scan failed")
	ErrInsertFailed       = New("insert failed")
	ErrDeleteFailed       = New("delete failed")

	// Archive errors
	ErrArchiveFailed = New("archive build failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Step tags cause with the sentinel of the stage that produced it.
// errors.Is(err, sentinel) holds for the result.
func Step(sentinel *Error, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{
		message: sentinel.message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Message returns the error text without the cause.
func (e *Error) Message() string {
	return e.message
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}
