package gemini

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	apperrors "whisper-vault/internal/app/errors"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const transcribePrompt = "Transcribe this audio verbatim. Return only the spoken words as plain text, with no commentary, headings or timestamps."

// GeminiTranscriber sends audio inline to a Gemini model and returns the transcript.
type GeminiTranscriber struct {
	client *genai.Client
	model  string
}

// Option customizes the underlying genai client.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = baseURL
	}
}

// NewGeminiTranscriber creates a transcriber backed by the Gemini API.
func NewGeminiTranscriber(ctx context.Context, apiKey, model string, opts ...Option) (*GeminiTranscriber, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiTranscriber{client: client, model: model}, nil
}

func (t *GeminiTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", apperrors.Wrap(err, "read audio file")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePrompt),
			genai.NewPartFromBytes(data, audioMimeType(inputFilePath)),
		}, genai.RoleUser),
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", apperrors.Wrapf(err, "generateContent failed (model %s)", t.model)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// audioMimeType guesses the mime type from the extension, defaulting to audio/mpeg.
func audioMimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "audio/mpeg"
	}
	if mt := mime.TypeByExtension(ext); strings.HasPrefix(mt, "audio/") {
		if i := strings.Index(mt, ";"); i >= 0 {
			mt = mt[:i]
		}
		return mt
	}
	switch ext {
	case ".m4a":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".aac":
		return "audio/aac"
	}
	return "audio/mpeg"
}
