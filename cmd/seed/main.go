package main

import (
	"log"

	"fitlog/database"
	"fitlog/internal/repository"
	"fitlog/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	exerciseRepo := repository.NewExerciseRepository(database.DB)
	if err := utils.SeedExercises(exerciseRepo); err != nil {
		log.Fatalf("Failed to seed exercise catalog: %v", err)
	}

	log.Println("Seeding completed")
}
