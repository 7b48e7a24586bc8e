package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	Addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{Addresses: addresses}
}

// GET /addresses
func (ac *AddressController) List(c *gin.Context) {
	rows, err := ac.Addresses.List(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// POST /addresses
func (ac *AddressController) Create(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	a, err := ac.Addresses.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, a)
}

// GET /addresses/:id
func (ac *AddressController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	a, err := ac.Addresses.Get(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

// PATCH /addresses/:id
func (ac *AddressController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.AddressUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	a, err := ac.Addresses.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ac.Addresses.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
