package middlewares

import (
	"log/slog"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/utils"
	"github.com/gin-gonic/gin"
)

// RequestLogger แทน gin.Logger() ให้ log ออกเป็น JSON ผ่าน slog
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if id := utils.CurrentUserID(c); id != "" {
			attrs = append(attrs, slog.String("user_id", id))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.ErrorContext(c.Request.Context(), "request", attrs...)
		case c.Writer.Status() >= 400:
			log.WarnContext(c.Request.Context(), "request", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "request", attrs...)
		}
	}
}
