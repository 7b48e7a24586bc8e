package resp

import (
	"errors"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Validation renders a ValidationError with its per-field messages.
func Validation(c *gin.Context, ve *apperr.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "fields": ve.Fields})
}

// Error picks the right status for a service error.
func Error(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		Validation(c, ve)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not found")
		return
	}
	ServerError(c, err)
}
