package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fitlog/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// statusForError maps a service error kind to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, message string) {
	c.JSON(statusForError(err), gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondBadRequest(c *gin.Context, message, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

// currentUserID reads the user id placed in the context by the auth
// middleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("user_id").(uint)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid "+name, name+" must be a valid positive integer")
		return 0, false
	}
	return uint(id), true
}
