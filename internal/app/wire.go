//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"whisper-vault/internal/app/repository"
	"whisper-vault/internal/config"
)

// InitializeApplication wires the HTTP service from configuration.
func InitializeApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, func(), error) {
	wire.Build(ApplicationSet)
	return nil, nil, nil
}

// InitializeRepository opens the configured database only.
func InitializeRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.TranscriptionDAO, func(), error) {
	wire.Build(RepositorySet)
	return nil, nil, nil
}
