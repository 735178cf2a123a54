package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "whisper-vault/internal/app/errors"
)

const (
	// DefaultMaxFileSize is the upload ceiling, 10MB.
	DefaultMaxFileSize int64 = 10 * 1024 * 1024

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config is the complete service configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Storage       StorageConfig       `yaml:"storage"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Upload        UploadConfig        `yaml:"upload"`
	Log           LogConfig           `yaml:"log"`
}

// ServerConfig represents API server configuration
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Environment     string        `yaml:"environment"`
}

// DatabaseConfig selects the SQL driver and connection string.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// StorageConfig configures the S3-compatible object store.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicURL overrides the scheme://endpoint prefix of public object URLs.
	PublicURL string `yaml:"public_url"`
}

// TranscriptionConfig selects and configures the speech-to-text provider.
type TranscriptionConfig struct {
	Provider      string `yaml:"provider"`
	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
	OpenAIModel   string `yaml:"openai_model"`
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiModel   string `yaml:"gemini_model"`
}

// UploadConfig bounds and tunes the upload pipeline.
type UploadConfig struct {
	MaxFileSize      int64  `yaml:"max_file_size"`
	TempDir          string `yaml:"temp_dir"`
	CleanupOnFailure bool   `yaml:"cleanup_on_failure"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    5 * time.Minute,
			IdleTimeout:     2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "file:data/whisper-vault.db?_foreign_keys=on",
		},
		Storage: StorageConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "audio",
		},
		Transcription: TranscriptionConfig{
			Provider:    ProviderOpenAI,
			OpenAIModel: "whisper-1",
			GeminiModel: "gemini-2.5-flash",
		},
		Upload: UploadConfig{
			MaxFileSize:      DefaultMaxFileSize,
			TempDir:          os.TempDir(),
			CleanupOnFailure: true,
		},
		Log: LogConfig{
			Development: true,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// and finally the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Step(apperrors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// ${VAR} references inside the file are resolved against the environment
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.ReadTimeout, "read"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.WriteTimeout, "write"); err != nil {
		return err
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return apperrors.RequiredField("database DSN")
	}

	if c.Storage.Bucket == "" {
		return apperrors.RequiredField("storage bucket")
	}
	if c.Storage.PublicURL != "" {
		if err := ValidateURL(c.Storage.PublicURL, "storage public"); err != nil {
			return err
		}
	}

	switch c.Transcription.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported transcription provider: %s", c.Transcription.Provider)
	}
	if c.Transcription.OpenAIBaseURL != "" {
		if err := ValidateURL(c.Transcription.OpenAIBaseURL, "OpenAI base"); err != nil {
			return err
		}
	}

	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload max file size must be positive")
	}

	return nil
}

// RequireTranscriptionKey fails fast when the selected provider has no key.
// Commands that never transcribe (migrate, export) skip this check.
func (c *Config) RequireTranscriptionKey() error {
	switch c.Transcription.Provider {
	case ProviderOpenAI:
		return apperrors.Step(apperrors.ErrMissingAPIKey, ValidateAPIKey(c.Transcription.OpenAIAPIKey, "OpenAI"))
	case ProviderGemini:
		return apperrors.Step(apperrors.ErrMissingAPIKey, ValidateAPIKey(c.Transcription.GeminiAPIKey, "Gemini"))
	}
	return nil
}

// Address returns host:port for the HTTP listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
