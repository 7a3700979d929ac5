package routes

import (
	"fitlog/internal/controllers"
	"fitlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController) {
	exerciseRoutes := router.Group("/exercises")
	exerciseRoutes.Use(middleware.AuthMiddleware())
	{
		exerciseRoutes.GET("/", exerciseController.ListExercises)
		exerciseRoutes.GET("/:id", exerciseController.GetExercise)
	}
}
