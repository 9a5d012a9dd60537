package resp

import (
	"log/slog"
	"net/http"

	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("path", c.FullPath()), slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
}

// StatusOf maps an apperr kind to its HTTP status.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindInvalidState, apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error เขียน error ตามชนิด; 500 ไม่ส่งรายละเอียดออกไป
func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		ServerError(c, err)
		return
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error(), "kind": apperr.KindOf(err).String()})
}
