package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"whisper-vault/internal/api/errors"
	"whisper-vault/internal/api/v1/dto"
	"whisper-vault/internal/app/api"
	apperrors "whisper-vault/internal/app/errors"
	"whisper-vault/internal/app/repository"
	"whisper-vault/internal/app/storage"
	"whisper-vault/internal/config"
)

const defaultSpoolExt = ".mp3"

// UploadServiceImpl implements UploadService
type UploadServiceImpl struct {
	store       storage.ObjectStore
	repository  repository.TranscriptionDAO
	transcriber api.Transcriber
	config      config.UploadConfig
	logger      *zap.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(
	store storage.ObjectStore,
	repository repository.TranscriptionDAO,
	transcriber api.Transcriber,
	cfg config.UploadConfig,
	logger *zap.Logger,
) UploadService {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = config.DefaultMaxFileSize
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	return &UploadServiceImpl{
		store:       store,
		repository:  repository,
		transcriber: transcriber,
		config:      cfg,
		logger:      logger,
	}
}

// UploadAndTranscribe validates req, stores the audio, transcribes it and
// records both rows. Rejections happen before any storage or database call.
func (s *UploadServiceImpl) UploadAndTranscribe(ctx context.Context, req *dto.UploadRequest) error {
	if err := s.validate(req); err != nil {
		uploadsTotal.WithLabelValues(resultRejected).Inc()
		s.logger.Info("Upload rejected",
			zap.String("user_id", req.UserID),
			zap.String("filename", req.Filename),
			zap.String("content_type", req.ContentType),
			zap.Int64("size", req.Size),
			zap.String("reason", err.Error()),
		)
		return err
	}

	if err := s.process(ctx, req); err != nil {
		if stderrors.Is(err, apperrors.ErrFileTooLarge) {
			uploadsTotal.WithLabelValues(resultRejected).Inc()
			return errors.WrapError(err, errors.KindTooLarge, errors.FileTooLargeMessage(s.config.MaxFileSize))
		}
		uploadsTotal.WithLabelValues(resultFailed).Inc()
		return errors.WrapError(err, errors.KindInternal, errors.MsgUploadFailed)
	}

	uploadsTotal.WithLabelValues(resultSuccess).Inc()
	return nil
}

func (s *UploadServiceImpl) validate(req *dto.UploadRequest) error {
	switch {
	case req.Content == nil || req.Filename == "":
		return errors.WrapError(apperrors.ErrMissingFile, errors.KindBadRequest, errors.MsgMissingFile)
	case req.UserID == "":
		return errors.WrapError(apperrors.ErrMissingUserID, errors.KindBadRequest, errors.MsgMissingUserID)
	case !req.IsAudio():
		return errors.WrapError(apperrors.ErrUnsupportedMedia, errors.KindBadRequest, errors.MsgNotAudio)
	case req.Size > s.config.MaxFileSize:
		return errors.WrapError(apperrors.ErrFileTooLarge, errors.KindTooLarge, errors.FileTooLargeMessage(s.config.MaxFileSize))
	}
	return nil
}

func (s *UploadServiceImpl) process(ctx context.Context, req *dto.UploadRequest) error {
	logger := s.logger.With(zap.String("user_id", req.UserID), zap.String("filename", req.Filename))

	tempPath, size, err := s.spool(req)
	if err != nil {
		if stderrors.Is(err, apperrors.ErrFileTooLarge) {
			return err
		}
		return s.fail(logger, "spool", err)
	}
	defer s.removeTemp(logger, tempPath)

	key := storage.ObjectKey(req.UserID, req.Filename)
	if err := s.put(ctx, key, tempPath, size, req.StoredContentType()); err != nil {
		step := "storage"
		if stderrors.Is(err, apperrors.ErrObjectExists) {
			step = "object_exists"
		}
		return s.fail(logger, step, apperrors.Step(apperrors.ErrStorageFailed, err))
	}
	fileURL := s.store.PublicURL(key)

	audioFile, err := s.repository.CreateAudioFile(ctx, req.UserID, fileURL)
	if err != nil {
		s.compensate(ctx, logger, 0, key)
		return s.fail(logger, "audio_file", err)
	}

	start := time.Now()
	text, err := s.transcriber.Transcript(ctx, tempPath)
	transcriptionSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.compensate(ctx, logger, audioFile.ID, key)
		return s.fail(logger, "transcription", apperrors.Step(apperrors.ErrTranscriptionFailed, err))
	}

	record, err := s.repository.CreateTranscription(ctx, req.UserID, audioFile.ID, text)
	if err != nil {
		s.compensate(ctx, logger, audioFile.ID, key)
		return s.fail(logger, "transcription_record", err)
	}

	logger.Info("File uploaded and transcribed",
		zap.Int64("audio_file_id", audioFile.ID),
		zap.Int64("transcription_id", record.ID),
		zap.Int64("size", size),
		zap.Int("transcript_chars", len(text)),
		zap.Duration("transcription_time", time.Since(start)),
	)
	return nil
}

// spool copies the upload to a uniquely named temp file, keeping an audio
// extension so providers can detect the format.
func (s *UploadServiceImpl) spool(req *dto.UploadRequest) (string, int64, error) {
	if err := os.MkdirAll(s.config.TempDir, 0o755); err != nil {
		return "", 0, apperrors.Step(apperrors.ErrSpoolFailed, err)
	}

	path := filepath.Join(s.config.TempDir, uuid.NewString()+spoolExt(req))
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", 0, apperrors.Step(apperrors.ErrSpoolFailed, err)
	}

	n, err := io.Copy(f, io.LimitReader(req.Content, s.config.MaxFileSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > s.config.MaxFileSize {
		err = apperrors.Step(apperrors.ErrFileTooLarge, fmt.Errorf("read more than %d bytes", s.config.MaxFileSize))
	}
	if err != nil {
		os.Remove(path)
		if stderrors.Is(err, apperrors.ErrFileTooLarge) {
			return "", 0, err
		}
		return "", 0, apperrors.Step(apperrors.ErrSpoolFailed, err)
	}
	return path, n, nil
}

func spoolExt(req *dto.UploadRequest) string {
	if ext := strings.ToLower(filepath.Ext(req.Filename)); ext != "" && len(ext) <= 6 {
		return ext
	}
	if exts, _ := mime.ExtensionsByType(req.StoredContentType()); len(exts) > 0 {
		return exts[0]
	}
	return defaultSpoolExt
}

func (s *UploadServiceImpl) put(ctx context.Context, key, path string, size int64, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.store.Put(ctx, key, f, size, contentType)
}

func (s *UploadServiceImpl) removeTemp(logger *zap.Logger, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to delete temporary file", zap.String("path", path), zap.Error(err))
	}
}

// compensate removes what an aborted upload already wrote. Failures are only
// logged.
func (s *UploadServiceImpl) compensate(ctx context.Context, logger *zap.Logger, audioFileID int64, key string) {
	if !s.config.CleanupOnFailure {
		logger.Warn("Leaving stored object and audio file after failed upload",
			zap.Int64("audio_file_id", audioFileID),
			zap.String("object_key", key),
		)
		return
	}

	ctx = context.WithoutCancel(ctx)
	if audioFileID > 0 {
		if err := s.repository.DeleteAudioFile(ctx, audioFileID); err != nil {
			logger.Warn("Failed to delete audio file row", zap.Int64("audio_file_id", audioFileID), zap.Error(err))
		}
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete stored object", zap.String("object_key", key), zap.Error(err))
	}
}

func (s *UploadServiceImpl) fail(logger *zap.Logger, step string, err error) error {
	pipelineFailuresTotal.WithLabelValues(step).Inc()
	logger.Error("Upload pipeline failed", zap.String("step", step), zap.Error(err))
	return err
}
