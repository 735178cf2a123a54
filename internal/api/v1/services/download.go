package services

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"whisper-vault/internal/api/errors"
	"whisper-vault/internal/api/v1/dto"
	"whisper-vault/internal/app/archive"
	apperrors "whisper-vault/internal/app/errors"
	"whisper-vault/internal/app/repository"
)

// DownloadServiceImpl implements DownloadService
type DownloadServiceImpl struct {
	repository repository.TranscriptionDAO
	logger     *zap.Logger
}

// NewDownloadService creates a new download service
func NewDownloadService(repository repository.TranscriptionDAO, logger *zap.Logger) DownloadService {
	return &DownloadServiceImpl{
		repository: repository,
		logger:     logger,
	}
}

// BuildArchive builds the zip in memory. A user without transcriptions gets
// an empty archive.
func (s *DownloadServiceImpl) BuildArchive(ctx context.Context, userID string) (*dto.Archive, error) {
	transcriptions, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		archivesTotal.WithLabelValues(resultFailed).Inc()
		s.logger.Error("Failed to list transcriptions", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.WrapError(err, errors.KindInternal, errors.MsgDownloadFailed)
	}

	var buf bytes.Buffer
	if err := archive.Build(&buf, transcriptions); err != nil {
		archivesTotal.WithLabelValues(resultFailed).Inc()
		err = apperrors.Step(apperrors.ErrArchiveFailed, err)
		s.logger.Error("Failed to build archive", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.WrapError(err, errors.KindInternal, errors.MsgDownloadFailed)
	}

	archivesTotal.WithLabelValues(resultSuccess).Inc()
	s.logger.Info("Built transcription archive",
		zap.String("user_id", userID),
		zap.Int("entries", len(transcriptions)),
		zap.Int("bytes", buf.Len()),
	)
	return &dto.Archive{Data: buf.Bytes(), Entries: len(transcriptions)}, nil
}
