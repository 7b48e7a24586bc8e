package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders — checkout the cart
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	view, err := oc.Orders.CreateFromCart(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	views, err := oc.Orders.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	view, err := oc.Orders.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /partner/orders
func (oc *OrderController) ListForOwner(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	views, err := oc.Orders.ListForOwner(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /partner/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	if err := oc.Orders.UpdateStatus(utils.CurrentUserID(c), uint(id), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /partner/orders/:id/delivery-status
func (oc *OrderController) UpdateDeliveryStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	if err := oc.Orders.UpdateDeliveryStatus(utils.CurrentUserID(c), uint(id), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// GET /partner/orders/export — xlsx download
func (oc *OrderController) Export(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	xl, err := oc.Orders.ExportXLSX(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "orders.xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := xl.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
