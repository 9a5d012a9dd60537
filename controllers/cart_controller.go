package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.AddItem(c.Request.Context(), actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /cart/items/:menuItemId
func (h *CartController) UpdateQty(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(c.Request.Context(), actor, c.Param("menuItemId"), *body.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	h.Get(c)
}

// DELETE /cart/items/:menuItemId
func (h *CartController) RemoveItem(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), actor, c.Param("menuItemId")); err != nil {
		resp.Error(c, err)
		return
	}
	h.Get(c)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), actor); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
