package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"whisper-vault/internal/api/middleware"
	"whisper-vault/internal/api/v1/dto"
	"whisper-vault/internal/api/v1/services"
)

// DownloadHandler handles GET /api/download-transcriptions
type DownloadHandler struct {
	service services.DownloadService
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service services.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		service: service,
	}
}

// Download handles GET /api/download-transcriptions
//
// @Summary Download a user's transcriptions
// @Description Returns a zip with one transcription_N.txt per transcription, oldest first
// @Tags transcriptions
// @Produce application/zip
// @Produce json
// @Param userId query string true "Owner of the transcriptions"
// @Success 200 {file} file "transcriptions.zip"
// @Failure 400 {object} errors.ErrorBody "userId is required"
// @Failure 500 {object} errors.ErrorBody "Download failed"
// @Router /download-transcriptions [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	var query dto.DownloadQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	archive, err := h.service.BuildArchive(c.Request.Context(), query.UserID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", dto.ArchiveFilename))
	c.Data(http.StatusOK, "application/zip", archive.Data)
}
