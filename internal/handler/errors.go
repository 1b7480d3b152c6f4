package handler

import (
	"errors"
	"net/http"

	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusOf 將錯誤分類轉成 HTTP 狀態碼
func statusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		// 重複訂票沿用 400
		if errors.Is(err, apperrors.ErrAlreadyBooked) {
			return http.StatusBadRequest
		}
		return http.StatusConflict
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// handleError 統一的錯誤回應；500 不回傳內部錯誤內容
func handleError(c *gin.Context, err error, operation string) {
	status := statusOf(err)
	kind := apperrors.KindOf(err)
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)

	if status >= http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	log.Warn("Request rejected")
	c.JSON(status, gin.H{"error": err.Error()})
}
