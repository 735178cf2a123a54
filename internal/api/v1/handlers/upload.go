package handlers

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"whisper-vault/internal/api/errors"
	"whisper-vault/internal/api/middleware"
	"whisper-vault/internal/api/v1/dto"
	"whisper-vault/internal/api/v1/services"
)

// UploadSuccessMessage is returned when the file is stored and transcribed.
const UploadSuccessMessage = "File uploaded and transcribed successfully"

// multipartOverhead is allowed on top of the file size for boundaries and
// the userId field.
const multipartOverhead = 1 << 20

// UploadHandler handles POST /api/upload-and-transcribe
type UploadHandler struct {
	service     services.UploadService
	maxFileSize int64
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(service services.UploadService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		service:     service,
		maxFileSize: maxFileSize,
	}
}

// UploadAndTranscribe handles POST /api/upload-and-transcribe
// Stores one audio file, transcribes it and records the result
//
// @Summary Upload and transcribe an audio file
// @Description Stores the file in object storage, transcribes it and saves the transcript for the user
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (max UPLOAD_MAX_FILE_SIZE, 10MB by default)"
// @Param userId formData string true "Owner of the file"
// @Success 200 {object} dto.Response "File uploaded and transcribed successfully"
// @Failure 400 {object} errors.ErrorBody "Missing file, missing userId or not an audio file"
// @Failure 413 {object} errors.ErrorBody "File too large"
// @Failure 500 {object} errors.ErrorBody "Upload or transcription failed"
// @Router /upload-and-transcribe [post]
func (h *UploadHandler) UploadAndTranscribe(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)

	var form dto.UploadForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		if isBodyTooLarge(err) {
			middleware.HandleError(c, errors.WrapError(err, errors.KindTooLarge, errors.FileTooLargeMessage(h.maxFileSize)))
			return
		}
		middleware.HandleError(c, errors.WrapError(err, errors.KindBadRequest, errors.MsgMissingFile))
		return
	}

	var content io.Reader
	if form.File != nil && form.File.Filename != "" {
		file, err := form.File.Open()
		if err != nil {
			middleware.HandleError(c, errors.WrapError(err, errors.KindBadRequest, errors.MsgMissingFile))
			return
		}
		defer file.Close()
		content = file
	}

	if err := h.service.UploadAndTranscribe(c.Request.Context(), dto.NewUploadRequest(form, content)); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: UploadSuccessMessage,
	})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
