package dto

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUploadRequest(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "memo.m4a",
		Size:     42,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"audio/mp4"}},
	}
	req := NewUploadRequest(UploadForm{UserID: " user-1 ", File: header}, strings.NewReader("x"))

	assert.Equal(t, "user-1", req.UserID)
	assert.Equal(t, "memo.m4a", req.Filename)
	assert.Equal(t, "audio/mp4", req.ContentType)
	assert.Equal(t, int64(42), req.Size)
	assert.True(t, req.IsAudio())
}

func TestNewUploadRequest_NoFile(t *testing.T) {
	req := NewUploadRequest(UploadForm{UserID: "user-1"}, nil)
	assert.Empty(t, req.Filename)
	assert.Nil(t, req.Content)
}

func TestUploadRequest_ContentType(t *testing.T) {
	tests := []struct {
		contentType string
		audio       bool
		stored      string
	}{
		{"audio/mpeg", true, "audio/mpeg"},
		{"Audio/WAV", true, "Audio/WAV"},
		{"video/mp4", false, "video/mp4"},
		{"application/octet-stream", false, "application/octet-stream"},
		{"", false, DefaultAudioContentType},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := &UploadRequest{ContentType: tt.contentType}
			assert.Equal(t, tt.audio, req.IsAudio())
			assert.Equal(t, tt.stored, req.StoredContentType())
		})
	}
}

func TestDownloadQuery_Validate(t *testing.T) {
	q := &DownloadQuery{UserID: "  "}
	err := q.Validate()
	require.Error(t, err)
	assert.Equal(t, "userId is required", err.Error())

	q = &DownloadQuery{UserID: " user-1 "}
	require.NoError(t, q.Validate())
	assert.Equal(t, "user-1", q.UserID)
}
