package routes

import (
	"fitlog/internal/controllers"
	"fitlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.Engine, sessionController *controllers.SessionController) {
	sessionRoutes := router.Group("/sessions")
	sessionRoutes.Use(middleware.AuthMiddleware())
	{
		sessionRoutes.POST("/", sessionController.StartSession)
		sessionRoutes.POST("/:id/complete", sessionController.CompleteSession)
		sessionRoutes.POST("/:id/sets", sessionController.LogSet)
	}
}
