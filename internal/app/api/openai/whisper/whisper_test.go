package whisper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openaiclient "whisper-vault/internal/app/api/openai"
)

func writeAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3 fake mp3 payload"), 0600))
	return path
}

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "successful transcription with special characters",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
		{
			name:          "API error - server error",
			mockResponse:  `{"error": {"message": "Internal server error", "type": "server_error"}}`,
			mockStatus:    http.StatusInternalServerError,
			expectError:   true,
			errorContains: "500",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
		{
			name:         "transcription with line breaks",
			mockResponse: `{"text": "Line 1\nLine 2\nLine 3"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modelCh := make(chan string, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
				assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

				if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
					modelCh <- r.FormValue("model")
					if file, header, err := r.FormFile("file"); assert.NoError(t, err) {
						body, _ := io.ReadAll(file)
						file.Close()
						assert.Equal(t, "audio.mp3", header.Filename)
						assert.Equal(t, "ID3 fake mp3 payload", string(body))
					}
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			transcriber := NewRemoteTranscriber(openaiclient.NewClient("sk-test", server.URL+"/v1"), "")

			text, err := transcriber.Transcript(context.Background(), writeAudioFile(t))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
			assert.Equal(t, "whisper-1", <-modelCh)
		})
	}
}

func TestRemoteTranscriber_MissingFile(t *testing.T) {
	transcriber := NewRemoteTranscriber(openaiclient.NewClient("sk-test", "http://127.0.0.1:1/v1"), "whisper-1")

	_, err := transcriber.Transcript(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "createTranscription failed")
}

func TestRemoteTranscriber_CustomModel(t *testing.T) {
	transcriber := NewRemoteTranscriber(openaiclient.NewClient("sk-test", ""), "gpt-4o-transcribe")
	assert.Equal(t, "gpt-4o-transcribe", transcriber.model)
}
