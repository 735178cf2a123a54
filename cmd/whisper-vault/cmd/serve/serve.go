package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whisper-vault/cmd/whisper-vault/cmd/shared"
	"whisper-vault/internal/app"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload and download HTTP API",
	Long: `Run the HTTP API.

- POST /api/upload-and-transcribe stores, transcribes and records one audio file
- GET /api/download-transcriptions?userId= returns the user's transcripts as a zip
- /health, /metrics and /swagger/index.html are served alongside`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := shared.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, cleanup, err := app.InitializeApplication(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize application", zap.Error(err))
			return err
		}
		defer cleanup()

		if err := application.Server.Start(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case err := <-application.Server.Err():
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return application.Server.Shutdown(shutdownCtx)
	},
}
