package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
	UploadDir   string
}

func NewRestaurantController(restaurants *services.RestaurantService, uploadDir string) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, UploadDir: uploadDir}
}

// POST /restaurants — composite registration, same shape as customers
func (rc *RestaurantController) Register(c *gin.Context) {
	var req services.RestaurantRegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if utils.IsDataURI(req.ProfilePicture) {
		path, err := utils.SaveBase64Image(req.ProfilePicture, rc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("profile_picture", "invalid image data"))
			return
		}
		req.ProfilePicture = path
	}

	view, err := rc.Restaurants.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	views, err := rc.Restaurants.List(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	view, err := rc.Restaurants.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /restaurants/me
func (rc *RestaurantController) Me(c *gin.Context) {
	view, err := rc.Restaurants.GetByUserID(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /restaurants/me
func (rc *RestaurantController) Update(c *gin.Context) {
	var req services.RestaurantUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if req.ProfilePicture != nil && utils.IsDataURI(*req.ProfilePicture) {
		path, err := utils.SaveBase64Image(*req.ProfilePicture, rc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("profile_picture", "invalid image data"))
			return
		}
		req.ProfilePicture = &path
	}

	view, err := rc.Restaurants.Update(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}
