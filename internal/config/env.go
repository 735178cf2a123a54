package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPaths are tried in order; the first one found is loaded.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error: variables may be set system-wide.
// Variables already present in the environment are not overridden.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// applyEnv overrides cfg with any variables present in the environment.
func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Environment, "APP_ENV")
	if err := setDuration(&cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")

	setString(&cfg.Storage.Endpoint, "MINIO_ENDPOINT")
	setString(&cfg.Storage.AccessKey, "MINIO_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "MINIO_SECRET_KEY")
	setString(&cfg.Storage.Bucket, "MINIO_BUCKET")
	setString(&cfg.Storage.PublicURL, "STORAGE_PUBLIC_URL")
	if err := setBool(&cfg.Storage.UseSSL, "MINIO_USE_SSL"); err != nil {
		return err
	}

	setString(&cfg.Transcription.Provider, "TRANSCRIPTION_PROVIDER")
	setString(&cfg.Transcription.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.Transcription.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&cfg.Transcription.OpenAIModel, "OPENAI_MODEL")
	setString(&cfg.Transcription.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&cfg.Transcription.GeminiModel, "GEMINI_MODEL")

	if err := setInt64(&cfg.Upload.MaxFileSize, "UPLOAD_MAX_FILE_SIZE"); err != nil {
		return err
	}
	setString(&cfg.Upload.TempDir, "UPLOAD_TEMP_DIR")
	if err := setBool(&cfg.Upload.CleanupOnFailure, "UPLOAD_CLEANUP_ON_FAILURE"); err != nil {
		return err
	}

	return setBool(&cfg.Log.Development, "LOG_DEVELOPMENT")
}

func setString(dst *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*dst = value
	}
}

func setBool(dst *bool, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

func setInt64(dst *int64, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

// setDuration accepts Go duration strings ("30s") or a plain number of seconds.
func setDuration(dst *time.Duration, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		*dst = time.Duration(seconds) * time.Second
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = parsed
	return nil
}
