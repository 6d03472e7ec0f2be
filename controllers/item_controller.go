package controllers

import (
	"gift-registry/constants"
	"gift-registry/dto"
	"gift-registry/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
	FindByName(ctx *gin.Context)
	FindByGuest(ctx *gin.Context)
	FindClaimed(ctx *gin.Context)
	FindUnclaimed(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Claim(ctx *gin.Context)
	Unclaim(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll()
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*items), "data": items})
}

func (c *ItemController) FindByName(ctx *gin.Context) {
	item, err := c.service.FindByName(ctx.Param("itemName"))
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (c *ItemController) FindByGuest(ctx *gin.Context) {
	items, err := c.service.FindByGuest(ctx.Param("guestName"), ctx.Param("guestNumber"))
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*items), "data": items})
}

func (c *ItemController) FindClaimed(ctx *gin.Context) {
	items, err := c.service.FindClaimed()
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*items), "data": items})
}

func (c *ItemController) FindUnclaimed(ctx *gin.Context) {
	items, err := c.service.FindUnclaimed()
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(*items), "data": items})
}

func (c *ItemController) Create(ctx *gin.Context) {
	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.Create(input)
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": newItem})
}

func (c *ItemController) Update(ctx *gin.Context) {
	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	updatedItem, err := c.service.Update(ctx.Param("itemName"), input)
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": updatedItem})
}

func (c *ItemController) Claim(ctx *gin.Context) {
	var input dto.ClaimItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
		return
	}

	claimedItem, err := c.service.Claim(ctx.Param("itemName"), input.GuestName, input.GuestNumber)
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": claimedItem})
}

func (c *ItemController) Unclaim(ctx *gin.Context) {
	unclaimedItem, err := c.service.Unclaim(ctx.Param("itemName"))
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": unclaimedItem})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	deletedItem, err := c.service.Delete(ctx.Param("itemName"))
	if err != nil {
		handleError(ctx, err, constants.ErrItemNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": deletedItem})
}
