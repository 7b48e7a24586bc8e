package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Dishes    *services.DishService
	UploadDir string
}

func NewDishController(dishes *services.DishService, uploadDir string) *DishController {
	return &DishController{Dishes: dishes, UploadDir: uploadDir}
}

// GET /restaurants/:id/dishes
func (dc *DishController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	views, err := dc.Dishes.ListByRestaurant(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

// POST /partner/dishes
func (dc *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if utils.IsDataURI(req.Image) {
		path, err := utils.SaveBase64Image(req.Image, dc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("image", "invalid image data"))
			return
		}
		req.Image = path
	}

	view, err := dc.Dishes.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// PATCH /partner/dishes/:id
func (dc *DishController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.DishUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}

	if req.Image != nil && utils.IsDataURI(*req.Image) {
		path, err := utils.SaveBase64Image(*req.Image, dc.UploadDir)
		if err != nil {
			resp.Validation(c, apperr.Validation("image", "invalid image data"))
			return
		}
		req.Image = &path
	}

	view, err := dc.Dishes.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /partner/dishes/:id
func (dc *DishController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := dc.Dishes.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /partner/dishes/import — multipart xlsx upload
func (dc *DishController) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	imported, skipped, err := dc.Dishes.ImportXLSX(utils.CurrentUserID(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"imported": imported, "skipped": skipped})
}
