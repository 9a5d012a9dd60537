package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// ===== Create =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// POST /orders/from-cart
func (oc *OrderController) CreateFromCart(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	o, err := oc.Svc.CreateFromCart(c.Request.Context(), actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// ===== List & Detail =====

// GET /orders?country=&status=
func (oc *OrderController) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	orders, err := oc.Svc.List(c.Request.Context(), actor, c.Query("country"), entity.OrderStatus(c.Query("status")))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	o, err := oc.Svc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// ===== Transitions =====

// PUT /orders/:id/place
func (oc *OrderController) Place(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.Place(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	o, err := oc.Svc.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := policy.Authorize(actor, policy.UpdateOrderStatus); err != nil {
		resp.Error(c, err)
		return
	}
	var req services.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}
