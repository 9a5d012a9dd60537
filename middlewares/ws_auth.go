// middlewares/ws_auth.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware อ่าน token จาก query ก่อน (browser ส่ง header ตอน upgrade ไม่ได้) แล้วค่อย header
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}
		authenticate(c, tokenStr, secret, nil)
	}
}
