package testutil

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"whisper-vault/internal/app/api"
)

var _ api.Transcriber = (*MockTranscriber)(nil)

// MockTranscriber is a testify mock of api.Transcriber. Set expectations with
// On("Transcript", ...).
type MockTranscriber struct {
	mock.Mock

	// Inputs holds the content of each file at the moment it was transcribed.
	Inputs [][]byte
}

// NewMockTranscriber creates a MockTranscriber with no expectations.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	if data, err := os.ReadFile(inputFilePath); err == nil {
		m.Inputs = append(m.Inputs, data)
	}
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}
