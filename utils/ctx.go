package utils

import (
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

func SetActor(c *gin.Context, a policy.Actor) {
	c.Set(actorKey, a)
	c.Set("userId", a.ID)
	c.Set("role", string(a.Role))
}

// CurrentActor คืน actor ที่ middleware ใส่ไว้
func CurrentActor(c *gin.Context) (policy.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return policy.Actor{}, false
	}
	a, ok := v.(policy.Actor)
	return a, ok
}

func CurrentUserID(c *gin.Context) string {
	a, _ := CurrentActor(c)
	return a.ID
}
