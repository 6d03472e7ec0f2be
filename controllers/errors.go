package controllers

import (
	"errors"
	"gift-registry/apperrors"
	"gift-registry/constants"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleError maps a classified store error to an HTTP response.
func handleError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": notFoundMessage})
	case errors.Is(err, apperrors.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"success": false, "error": constants.ErrDuplicate})
	case errors.Is(err, apperrors.ErrForeignKey):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrForeignKey})
	case errors.Is(err, apperrors.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": constants.ErrInvalidInput})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": constants.ErrUnexpected})
	}
}
