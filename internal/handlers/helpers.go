// Package handlers exposes the ledger engine's mutation and query
// contract over HTTP. Handlers are thin: they bind and validate requests,
// call into the engine, and render its results.
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/logger"
	"zeroledger/internal/models"
)

// dateLayout is the wire format for transaction and loan dates.
const dateLayout = "2006-01-02"

// timeNow is a seam for handler tests that need a fixed clock.
var timeNow = time.Now

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// parseMonthParam parses the :month path parameter ("YYYY-MM").
func parseMonthParam(c *gin.Context) (models.Month, error) {
	month, err := models.ParseMonth(c.Param("month"))
	if err != nil {
		return models.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month; expected YYYY-MM")
	}
	return month, nil
}

// parseMonthString parses a "YYYY-MM" month from a request body field.
func parseMonthString(value string) (models.Month, error) {
	month, err := models.ParseMonth(value)
	if err != nil {
		return models.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month; expected YYYY-MM")
	}
	return month, nil
}

// parseDate parses an optional "YYYY-MM-DD" date string; empty input
// yields the zero time, which the engine treats as "now".
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date; expected YYYY-MM-DD")
	}
	return date, nil
}
