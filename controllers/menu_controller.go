package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	m, err := ctl.Svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// PATCH /menu-items/:id/price (admin)
func (ctl *MenuController) UpdatePrice(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req struct {
		Price decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.UpdatePrice(c.Request.Context(), actor, c.Param("id"), req.Price)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}
