package client

import (
	"fmt"
	"net/http"

	apperrors "whisper-vault/internal/app/errors"
)

// MaxFiles is the most files a session uploads at once.
const MaxFiles = 5

var (
	ErrTooManyFiles     = apperrors.Newf("You can only upload up to %d files at once.", MaxFiles)
	ErrNoFiles          = apperrors.New("Please select at least one file to transcribe.")
	ErrUploadInProgress = apperrors.New("An upload is already in progress.")
	ErrDownloadNotReady = apperrors.New("Transcriptions can be downloaded once every file is transcribed.")
)

// ServerError is a failure reported by the server.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}
