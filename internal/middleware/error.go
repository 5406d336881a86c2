package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/logger"
)

// ErrorHandler returns a Gin middleware that renders errors attached to
// the context as the service's JSON error envelope. AppErrors keep their
// code, message and status; anything else is logged with the request id
// and masked behind a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("request error",
					"request_id", c.GetString(RequestIDKey),
					"code", appErr.Code,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			writeErrorEnvelope(c, appErr)
			return
		}

		logger.Get().Errorw("unexpected error",
			"request_id", c.GetString(RequestIDKey),
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		writeErrorEnvelope(c, apperrors.ErrInternalServer)
	}
}

func writeErrorEnvelope(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
