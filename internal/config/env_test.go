package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "whisper-vault/internal/app/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxFileSize, cfg.Upload.MaxFileSize)
	assert.Equal(t, "audio", cfg.Storage.Bucket)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Upload.CleanupOnFailure)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "45")
	t.Setenv("SERVER_WRITE_TIMEOUT", "2m")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/db?sslmode=disable")
	t.Setenv("MINIO_BUCKET", "voice")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TRANSCRIPTION_PROVIDER", "gemini")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "1024")
	t.Setenv("UPLOAD_CLEANUP_ON_FAILURE", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "voice", cfg.Storage.Bucket)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, ProviderGemini, cfg.Transcription.Provider)
	assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
	assert.False(t, cfg.Upload.CleanupOnFailure)
}

func TestLoad_InvalidEnv(t *testing.T) {
	testCases := []struct {
		name          string
		key           string
		value         string
		errorContains string
		invalidConfig bool
	}{
		{"bad bool", "MINIO_USE_SSL", "maybe", "invalid MINIO_USE_SSL", false},
		{"bad size", "UPLOAD_MAX_FILE_SIZE", "ten", "invalid UPLOAD_MAX_FILE_SIZE", false},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon", "invalid SERVER_READ_TIMEOUT", false},
		{"unknown driver", "DB_DRIVER", "mysql", "unsupported database driver", true},
		{"unknown provider", "TRANSCRIPTION_PROVIDER", "vosk", "unsupported transcription provider", true},
		{"bad port", "SERVER_PORT", "http", "port invalid", true},
		{"bad public url", "STORAGE_PUBLIC_URL", "cdn.example.com", "must start with http", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
			assert.Equal(t, tc.invalidConfig, errors.Is(err, apperrors.ErrInvalidConfig))
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("TEST_MINIO_SECRET", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "7070"
  read_timeout: 15s
storage:
  bucket: recordings
  secret_key: ${TEST_MINIO_SECRET}
upload:
  max_file_size: 2048
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "recordings", cfg.Storage.Bucket)
	assert.Equal(t, "from-env", cfg.Storage.SecretKey)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	// untouched keys keep their defaults
	assert.Equal(t, "whisper-1", cfg.Transcription.OpenAIModel)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  bucket: from-file\n"), 0600))
	t.Setenv("MINIO_BUCKET", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestRequireTranscriptionKey(t *testing.T) {
	testCases := []struct {
		name          string
		provider      string
		openaiKey     string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:      "valid OpenAI key",
			provider:  ProviderOpenAI,
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:      "valid Gemini key",
			provider:  ProviderGemini,
			geminiKey: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:          "missing OpenAI key",
			provider:      ProviderOpenAI,
			expectError:   true,
			errorContains: "OpenAI API key is required",
		},
		{
			name:          "invalid OpenAI key format",
			provider:      ProviderOpenAI,
			openaiKey:     "invalid-key-1234567890",
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
		{
			name:          "Gemini key too short",
			provider:      ProviderGemini,
			geminiKey:     "AIza-short",
			expectError:   true,
			errorContains: "too short",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Transcription.Provider = tc.provider
			cfg.Transcription.OpenAIAPIKey = tc.openaiKey
			cfg.Transcription.GeminiAPIKey = tc.geminiKey

			err := cfg.RequireTranscriptionKey()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WV_TEST_FROM_DOTENV=loaded\n"), 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)
	defer os.Unsetenv("WV_TEST_FROM_DOTENV")

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "loaded", os.Getenv("WV_TEST_FROM_DOTENV"))
}

func TestServerConfig(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: "8080", Environment: "production"}
	assert.Equal(t, "127.0.0.1:8080", s.Address())
	assert.True(t, s.IsProduction())
}
