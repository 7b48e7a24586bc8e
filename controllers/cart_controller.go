package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GET /cart
func (cc *CartController) List(c *gin.Context) {
	views, err := cc.Cart.List(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

// POST /cart
func (cc *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	if err := cc.Cart.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PATCH /cart/:id
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	if err := cc.Cart.UpdateQuantity(utils.CurrentUserID(c), uint(id), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/:id
func (cc *CartController) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := cc.Cart.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
