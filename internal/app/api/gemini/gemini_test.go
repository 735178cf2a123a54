package gemini

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiTranscriber_Transcript(t *testing.T) {
	bodyCh := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		bodyCh <- string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  hello from gemini \n"}]}}]}`))
	}))
	defer server.Close()

	transcriber, err := NewGeminiTranscriber(context.Background(), "AIzaTest-1234567890abcdef1234567890", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake audio"), 0600))

	text, err := transcriber.Transcript(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello from gemini", text)

	body := <-bodyCh
	assert.Contains(t, body, base64.StdEncoding.EncodeToString([]byte("fake audio")))
	assert.Contains(t, body, "audio/mpeg")
}

func TestGeminiTranscriber_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	transcriber, err := NewGeminiTranscriber(context.Background(), "AIzaTest-1234567890abcdef1234567890", "gemini-2.5-flash", WithBaseURL(server.URL))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("fake audio"), 0600))

	_, err = transcriber.Transcript(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generateContent failed (model gemini-2.5-flash)")
}

func TestGeminiTranscriber_MissingFile(t *testing.T) {
	transcriber := &GeminiTranscriber{model: DefaultModel}
	_, err := transcriber.Transcript(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read audio file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAudioMimeType(t *testing.T) {
	assert.Equal(t, "audio/mpeg", audioMimeType("noext"))
	assert.Equal(t, "audio/mpeg", audioMimeType("a.mp3"))
	assert.Equal(t, "audio/mpeg", audioMimeType("a.bogus"))

	for _, name := range []string{"a.M4A", "a.wav", "a.flac", "a.ogg", "a.aac"} {
		got := audioMimeType(name)
		assert.True(t, strings.HasPrefix(got, "audio/"), "%s -> %s", name, got)
		assert.NotContains(t, got, ";")
	}
}
