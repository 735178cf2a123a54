package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestUserID is the user every fixture belongs to.
const TestUserID = "test_user_1"

// SampleMP3 is a few bytes that start like an MP3 file.
var SampleMP3 = []byte("ID3\x04\x00\x00\x00\x00\x00\x00fake mp3 frames")

// SampleTranscriptions are transcripts as a provider would return them.
var SampleTranscriptions = []string{
	"Welcome to our podcast. Today we're discussing the latest developments in speech recognition.",
	"In this episode, we explore the impact of automation on modern businesses.",
	"This is a short audio clip used for testing purposes.",
}

// WriteAudioFile writes data to name inside a per-test temp dir and returns its path.
func WriteAudioFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
