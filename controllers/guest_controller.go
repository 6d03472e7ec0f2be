package controllers

import (
	"gift-registry/constants"
	"gift-registry/dto"
	"gift-registry/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IGuestController interface {
	FindAll(ctx *gin.Context)
	FindByKey(ctx *gin.Context)
	FindByUser(ctx *gin.Context)
	FindWithItems(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type GuestController struct {
	service services.IGuestService
}

func NewGuestController(service services.IGuestService) IGuestController {
	return &GuestController{service: service}
}

func (c *GuestController) FindAll(ctx *gin.Context) {
	guests, err := c.service.FindAll()
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*guests), "data": guests})
}

func (c *GuestController) FindByKey(ctx *gin.Context) {
	guest, err := c.service.FindByKey(ctx.Param("name"), ctx.Param("number"))
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": guest})
}

func (c *GuestController) FindByUser(ctx *gin.Context) {
	guests, err := c.service.FindByUser(ctx.Param("userEmail"))
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*guests), "data": guests})
}

func (c *GuestController) FindWithItems(ctx *gin.Context) {
	guest, err := c.service.FindWithItems(ctx.Param("name"), ctx.Param("number"))
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": guest})
}

func (c *GuestController) Create(ctx *gin.Context) {
	var input dto.CreateGuestInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	newGuest, err := c.service.Create(input)
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": newGuest})
}

func (c *GuestController) Update(ctx *gin.Context) {
	var input dto.UpdateGuestInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	updatedGuest, err := c.service.Update(ctx.Param("name"), ctx.Param("number"), input)
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": updatedGuest})
}

func (c *GuestController) Delete(ctx *gin.Context) {
	deletedGuest, err := c.service.Delete(ctx.Param("name"), ctx.Param("number"))
	if err != nil {
		handleError(ctx, err, constants.ErrGuestNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": deletedGuest})
}
