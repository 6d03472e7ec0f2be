package controllers

import (
	"gift-registry/constants"
	"gift-registry/dto"
	"gift-registry/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindByEmail(ctx *gin.Context)
	FindWithGuests(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*users), "data": users})
}

func (c *UserController) FindByEmail(ctx *gin.Context) {
	user, err := c.service.FindByEmail(ctx.Param("email"))
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (c *UserController) FindWithGuests(ctx *gin.Context) {
	user, err := c.service.FindWithGuests(ctx.Param("email"))
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	newUser, err := c.service.Create(input)
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": newUser})
}

func (c *UserController) Update(ctx *gin.Context) {
	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	updatedUser, err := c.service.Update(ctx.Param("email"), input)
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": updatedUser})
}

func (c *UserController) Delete(ctx *gin.Context) {
	deletedUser, err := c.service.Delete(ctx.Param("email"))
	if err != nil {
		handleError(ctx, err, constants.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": deletedUser})
}
