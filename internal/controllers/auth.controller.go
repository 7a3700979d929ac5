package controllers

import (
	"errors"
	"net/http"

	"fitlog/internal/apperrors"
	"fitlog/internal/middleware"
	"fitlog/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Goal     string `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	user, err := ac.accounts.Register(req.Name, req.Email, req.Password, req.Goal)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	respondCreated(c, "User registered successfully", gin.H{"id": user.ID})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	user, err := ac.accounts.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Login failed",
				"error":   err.Error(),
			})
			return
		}
		respondError(c, err, "Login failed")
		return
	}

	token, err := middleware.IssueToken(user.ID, user.Email)
	if err != nil {
		respondError(c, err, "Could not generate token")
		return
	}

	respondOK(c, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
