package database

import (
	"log"

	"fitlog/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.Routine{},
		&models.RoutineExercise{},
		&models.PlannedSet{},
		&models.WorkoutSession{},
		&models.SetLog{},
		&models.BodyMeasurement{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
