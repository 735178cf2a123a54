package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"whisper-vault/internal/api/server"
	v1routes "whisper-vault/internal/api/v1/routes"
	"whisper-vault/internal/api/v1/services"
	"whisper-vault/internal/app/api"
	"whisper-vault/internal/app/api/gemini"
	openaiclient "whisper-vault/internal/app/api/openai"
	"whisper-vault/internal/app/api/openai/whisper"
	apperrors "whisper-vault/internal/app/errors"
	"whisper-vault/internal/app/repository"
	"whisper-vault/internal/app/repository/pg"
	"whisper-vault/internal/app/repository/sqlite"
	"whisper-vault/internal/app/storage"
	"whisper-vault/internal/config"
)

// RepositorySet provides the database layer alone.
var RepositorySet = wire.NewSet(provideTranscriptionDAO)

// ApplicationSet provides everything the HTTP server needs.
var ApplicationSet = wire.NewSet(
	RepositorySet,
	provideObjectStore,
	provideTranscriber,
	provideUploadService,
	services.NewDownloadService,
	provideServiceContainer,
	provideServer,
	NewApplication,
)

// provideTranscriptionDAO opens the configured database and creates the schema.
func provideTranscriptionDAO(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.TranscriptionDAO, func(), error) {
	var (
		dao interface {
			repository.TranscriptionDAO
			EnsureSchema(ctx context.Context) error
		}
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dao, err = pg.NewPostgresDB(cfg.Database.DSN)
	case config.DriverSQLite:
		dao, err = sqlite.NewSQLiteDB(cfg.Database.DSN)
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, apperrors.Step(apperrors.ErrDatabaseConnection, err)
	}

	if err := dao.EnsureSchema(ctx); err != nil {
		dao.Close()
		return nil, nil, err
	}

	logger.Info("Database ready", zap.String("driver", cfg.Database.Driver))
	cleanup := func() {
		if err := dao.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}
	return dao, cleanup, nil
}

func provideObjectStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.ObjectStore, error) {
	return storage.NewMinioStore(ctx, cfg.Storage, logger)
}

// provideTranscriber builds the configured speech-to-text provider.
func provideTranscriber(ctx context.Context, cfg *config.Config) (api.Transcriber, error) {
	if err := cfg.RequireTranscriptionKey(); err != nil {
		return nil, err
	}

	tc := cfg.Transcription
	switch tc.Provider {
	case config.ProviderGemini:
		return gemini.NewGeminiTranscriber(ctx, tc.GeminiAPIKey, tc.GeminiModel)
	default:
		return whisper.NewRemoteTranscriber(openaiclient.NewClient(tc.OpenAIAPIKey, tc.OpenAIBaseURL), tc.OpenAIModel), nil
	}
}

func provideUploadService(
	store storage.ObjectStore,
	dao repository.TranscriptionDAO,
	transcriber api.Transcriber,
	cfg *config.Config,
	logger *zap.Logger,
) services.UploadService {
	return services.NewUploadService(store, dao, transcriber, cfg.Upload, logger)
}

func provideServiceContainer(upload services.UploadService, download services.DownloadService, cfg *config.Config) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		UploadService:   upload,
		DownloadService: download,
		MaxFileSize:     cfg.Upload.MaxFileSize,
	}
}

func provideServer(cfg *config.Config, container *v1routes.ServiceContainer, logger *zap.Logger) *server.Server {
	return server.NewServer(cfg.Server, container, logger)
}
