package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/utils"
	"github.com/gin-gonic/gin"
)

// mustActor ดึง actor จาก context; ไม่มีแปลว่า route ไม่ได้ผ่าน AuthMiddleware
func mustActor(c *gin.Context) (policy.Actor, bool) {
	a, ok := utils.CurrentActor(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return policy.Actor{}, false
	}
	return a, true
}
