package services

import (
	"context"

	"whisper-vault/internal/api/v1/dto"
)

// UploadService stores, transcribes and records one audio file.
type UploadService interface {
	UploadAndTranscribe(ctx context.Context, req *dto.UploadRequest) error
}

// DownloadService packs a user's transcriptions into a zip archive.
type DownloadService interface {
	BuildArchive(ctx context.Context, userID string) (*dto.Archive, error)
}
