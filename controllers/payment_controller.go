package controllers

import (
	"github.com/Keshavsaini22/slooze-assignment/pkg/resp"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payments/checkout
func (pc *PaymentController) Checkout(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Svc.Checkout(c.Request.Context(), actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT /payments/:orderId (admin)
func (pc *PaymentController) UpdateMethod(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req services.UpdateMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Svc.UpdateMethod(c.Request.Context(), actor, c.Param("orderId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /payments/:orderId
func (pc *PaymentController) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	p, err := pc.Svc.Get(c.Request.Context(), actor, c.Param("orderId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}
