package controllers

import (
	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Customers *services.CustomerService
	UploadDir string
}

func NewCustomerController(customers *services.CustomerService, uploadDir string) *CustomerController {
	return &CustomerController{Customers: customers, UploadDir: uploadDir}
}

// POST /customers — composite registration: profile + nested account
func (cc *CustomerController) Register(c *gin.Context) {
	var req services.CustomerRegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if utils.IsDataURI(req.ProfilePicture) {
		path, err := utils.SaveBase64Image(req.ProfilePicture, cc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("profile_picture", "invalid image data"))
			return
		}
		req.ProfilePicture = path
	}

	view, err := cc.Customers.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// GET /customers/me
func (cc *CustomerController) Me(c *gin.Context) {
	view, err := cc.Customers.GetByUserID(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /customers/me
func (cc *CustomerController) Update(c *gin.Context) {
	var req services.CustomerUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if req.ProfilePicture != nil && utils.IsDataURI(*req.ProfilePicture) {
		path, err := utils.SaveBase64Image(*req.ProfilePicture, cc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("profile_picture", "invalid image data"))
			return
		}
		req.ProfilePicture = &path
	}

	view, err := cc.Customers.Update(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}
