package routes

import (
	"fitlog/internal/controllers"
	"fitlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMeasurementRoutes(router *gin.Engine, measurementController *controllers.MeasurementController) {
	measurementRoutes := router.Group("/measurements")
	measurementRoutes.Use(middleware.AuthMiddleware())
	{
		measurementRoutes.POST("/", measurementController.CreateMeasurement)
		measurementRoutes.GET("/", measurementController.ListMeasurements)
		measurementRoutes.GET("/latest", measurementController.LatestMeasurement)
		measurementRoutes.GET("/progress", measurementController.Progress)
		measurementRoutes.GET("/:id", measurementController.GetMeasurement)
		measurementRoutes.PUT("/:id", measurementController.UpdateMeasurement)
		measurementRoutes.DELETE("/:id", measurementController.DeleteMeasurement)
		measurementRoutes.GET("/:id/compare/:previous_id", measurementController.Compare)
	}
}
