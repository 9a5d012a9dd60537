package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?country=
func (rc *RestaurantController) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	rests, err := rc.Svc.List(c.Request.Context(), actor, c.Query("country"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	r, err := rc.Svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	items, err := rc.Svc.Menu(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}
