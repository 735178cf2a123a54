package dto

import (
	"strings"

	"whisper-vault/internal/api/errors"
)

// ArchiveFilename is sent in the Content-Disposition header.
const ArchiveFilename = "transcriptions.zip"

// DownloadQuery is the query of GET /api/download-transcriptions.
type DownloadQuery struct {
	UserID string `form:"userId" binding:"required"`
}

// Validate rejects a blank userId.
func (q *DownloadQuery) Validate() error {
	q.UserID = strings.TrimSpace(q.UserID)
	if q.UserID == "" {
		return errors.NewBadRequestError(errors.MsgMissingUserID)
	}
	return nil
}

// Archive is a built zip of a user's transcriptions.
type Archive struct {
	Data    []byte
	Entries int
}
