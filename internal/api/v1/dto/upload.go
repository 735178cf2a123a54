package dto

import (
	"io"
	"mime/multipart"
	"strings"
)

// DefaultAudioContentType is stored when the upload part has no content type.
const DefaultAudioContentType = "audio/mpeg"

// UploadForm is the multipart form of POST /api/upload-and-transcribe.
type UploadForm struct {
	UserID string                `form:"userId"`
	File   *multipart.FileHeader `form:"file" swaggerignore:"true"`
}

// UploadRequest is one audio file handed to the upload service.
type UploadRequest struct {
	UserID      string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// NewUploadRequest builds an UploadRequest from the bound form. Content is nil
// when the form carries no file.
func NewUploadRequest(form UploadForm, content io.Reader) *UploadRequest {
	req := &UploadRequest{
		UserID:  strings.TrimSpace(form.UserID),
		Content: content,
	}
	if form.File != nil {
		req.Filename = form.File.Filename
		req.ContentType = form.File.Header.Get("Content-Type")
		req.Size = form.File.Size
	}
	return req
}

// StoredContentType is the content type the object is stored with.
func (r *UploadRequest) StoredContentType() string {
	if r.ContentType == "" {
		return DefaultAudioContentType
	}
	return r.ContentType
}

// IsAudio reports whether the declared content type is an audio type.
func (r *UploadRequest) IsAudio() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "audio")
}

// Response is the JSON body of the upload endpoint and of every error.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"File uploaded and transcribed successfully"`
	Error   string `json:"error,omitempty"`
}
