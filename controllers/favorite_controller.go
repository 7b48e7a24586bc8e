package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: favorites}
}

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	views, err := fc.Favorites.List(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": views})
}

type AddFavoriteRequest struct {
	Restaurant uint `json:"restaurant" binding:"required"`
}

// POST /favorites
func (fc *FavoriteController) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Validation(c, apperr.FromBinding(err))
		return
	}
	view, err := fc.Favorites.Add(utils.CurrentUserID(c), req.Restaurant)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// DELETE /favorites/:restaurantId
func (fc *FavoriteController) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := fc.Favorites.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
