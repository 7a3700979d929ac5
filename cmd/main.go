package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"fitlog/database"
	"fitlog/internal/cache"
	"fitlog/internal/controllers"
	"fitlog/internal/repository"
	"fitlog/internal/services"
	"fitlog/internal/utils"
	"fitlog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	exerciseRepo := repository.NewExerciseRepository(database.DB)
	routineRepo := repository.NewRoutineRepository(database.DB)
	sessionRepo := repository.NewSessionRepository(database.DB)
	measurementRepo := repository.NewMeasurementRepository(database.DB)

	if err := utils.SeedExercises(exerciseRepo); err != nil {
		log.Fatalf("Failed to seed exercise catalog: %v", err)
	}

	// Redis is optional: without it the exercise catalog is served
	// straight from the database.
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, exercise catalog will not be cached: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Services
	accountService := services.NewAccountService(userRepo)
	workoutService := services.NewWorkoutService(routineRepo, sessionRepo, exerciseRepo)
	measurementService := services.NewMeasurementService(measurementRepo)

	// Controllers
	authController := controllers.NewAuthController(accountService)
	routineController := controllers.NewRoutineController(workoutService)
	sessionController := controllers.NewSessionController(workoutService)
	measurementController := controllers.NewMeasurementController(measurementService)
	exerciseController := controllers.NewExerciseController(exerciseRepo, redisClient)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitLog API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterExerciseRoutes(router, exerciseController)
	routes.RegisterRoutineRoutes(router, routineController)
	routes.RegisterSessionRoutes(router, sessionController)
	routes.RegisterMeasurementRoutes(router, measurementController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("FitLog API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
