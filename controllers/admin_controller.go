package controllers

import (
	"gift-registry/constants"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IAdminController interface {
	CheckDatabase(ctx *gin.Context)
}

type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) IAdminController {
	return &AdminController{db: db}
}

// CheckDatabase pings the backend so operators can verify connectivity.
func (c *AdminController) CheckDatabase(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": constants.ErrUnexpected})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database is not reachable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Database is connected"})
}
