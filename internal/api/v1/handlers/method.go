package handlers

import (
	"github.com/gin-gonic/gin"

	"whisper-vault/internal/api/errors"
	"whisper-vault/internal/api/middleware"
)

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	middleware.HandleError(c, errors.NewMethodNotAllowedError())
}

// NotFound answers requests for unknown paths.
func NotFound(c *gin.Context) {
	middleware.HandleError(c, errors.NewNotFoundError())
}
