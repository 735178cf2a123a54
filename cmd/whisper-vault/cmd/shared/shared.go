// Package shared holds state and helpers common to all subcommands.
package shared

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"whisper-vault/internal/client"
	"whisper-vault/internal/config"
	"whisper-vault/internal/logging"
)

var (
	ConfigFile string
	Verbose    bool
)

// Load reads the configuration and builds the logger.
func Load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Development || Verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// DefaultServerURL is used by the client commands when --server is not set.
func DefaultServerURL() string {
	cfg := config.Default()
	return "http://localhost:" + cfg.Server.Port
}

// DefaultClientTimeout bounds one upload-and-transcribe request, transcription included.
const DefaultClientTimeout = 5 * time.Minute

// NewClient returns an API client whose requests give up after timeout.
func NewClient(serverURL string, timeout time.Duration) *client.Client {
	return client.New(serverURL, client.WithHTTPClient(&http.Client{Timeout: timeout}))
}
