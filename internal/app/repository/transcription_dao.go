package repository

import (
	"context"

	"whisper-vault/internal/app/model"
)

// TranscriptionDAO persists audio file metadata and their transcriptions.
type TranscriptionDAO interface {
	Close() error

	CreateAudioFile(ctx context.Context, userID, fileURL string) (*model.AudioFile, error)

	DeleteAudioFile(ctx context.Context, id int64) error

	CreateTranscription(ctx context.Context, userID string, audioFileID int64, text string) (*model.TranscriptionRecord, error)

	// ListByUser returns the user's transcriptions joined with their audio file
	// URL, oldest first.
	ListByUser(ctx context.Context, userID string) ([]model.UserTranscription, error)
}
