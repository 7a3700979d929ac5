package routes

import (
	"fitlog/internal/controllers"
	"fitlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutineRoutes(router *gin.Engine, routineController *controllers.RoutineController) {
	routineRoutes := router.Group("/routines")
	routineRoutes.Use(middleware.AuthMiddleware())
	{
		routineRoutes.POST("/", routineController.CreateRoutine)
		routineRoutes.GET("/", routineController.ListRoutines)
		routineRoutes.DELETE("/:id", routineController.DeleteRoutine)
		routineRoutes.POST("/:id/exercises", routineController.AddExercise)
		routineRoutes.GET("/:id/exercises", routineController.ListExercises)
	}

	exerciseRoutes := router.Group("/routine-exercises")
	exerciseRoutes.Use(middleware.AuthMiddleware())
	{
		exerciseRoutes.POST("/:exercise_id/sets", routineController.AddPlannedSet)
		exerciseRoutes.GET("/:exercise_id/sets", routineController.ListPlannedSets)
		exerciseRoutes.GET("/:exercise_id/stats", routineController.ExerciseStats)
	}
}
