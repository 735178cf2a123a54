package middleware

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"whisper-vault/internal/api/errors"
)

// ErrorHandler turns panics into the generic 500 body.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError(errors.MsgInternal)
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError(errors.MsgInternal)
		}

		apiErr.RequestID = requestID
		abortWithError(c, apiErr)
	})
}

// HandleError is a helper function for handlers to return errors
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		apiErr.RequestID = c.GetString(RequestIDKey)
		if apiErr.Cause != nil {
			c.Error(apiErr.Cause)
		}
		abortWithError(c, apiErr)
		return
	}

	// anything else is a bug; let the recovery middleware answer
	panic(err)
}

func abortWithError(c *gin.Context, apiErr *errors.APIError) {
	c.Header("Content-Type", "application/json")
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr.Body())
}
