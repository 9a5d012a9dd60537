package middlewares

import (
	"net/http"
	"strings"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware ตรวจ token แล้วสร้าง actor; ถ้าส่ง roles มาจะบังคับ role ด้วย
func AuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			return
		}
		authenticate(c, strings.TrimPrefix(h, "Bearer "), secret, requiredRoles)
	}
}

func authenticate(c *gin.Context, tokenStr, secret string, requiredRoles []entity.Role) {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
		return
	}

	actor, err := policy.NewActor(claims.UserID, claims.Role, claims.Country)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid claims"})
		return
	}
	utils.SetActor(c, actor)

	if len(requiredRoles) > 0 {
		allowed := false
		for _, r := range requiredRoles {
			if actor.Role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
	}

	c.Next()
}
