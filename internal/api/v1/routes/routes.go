package routes

import (
	"github.com/gin-gonic/gin"

	"whisper-vault/internal/api/v1/handlers"
	"whisper-vault/internal/api/v1/services"
)

// Paths of the public API, relative to /api.
const (
	UploadPath   = "/upload-and-transcribe"
	DownloadPath = "/download-transcriptions"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	UploadService   services.UploadService
	DownloadService services.DownloadService
	MaxFileSize     int64
}

// RegisterRoutes registers the upload and download routes on router.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	uploadHandler := handlers.NewUploadHandler(container.UploadService, container.MaxFileSize)
	router.POST(UploadPath, uploadHandler.UploadAndTranscribe)

	downloadHandler := handlers.NewDownloadHandler(container.DownloadService)
	router.GET(DownloadPath, downloadHandler.Download)
}
