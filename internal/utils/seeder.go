package utils

import (
	"log"

	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// Catalog of predefined exercises. Seeded once; users never mutate it.
var predefinedExercises = []models.Exercise{
	{Name: "Barbell Squat", MuscleGroup: "legs", Description: "Back squat with a barbell across the upper back."},
	{Name: "Front Squat", MuscleGroup: "legs", Description: "Squat with the barbell racked on the front delts."},
	{Name: "Leg Press", MuscleGroup: "legs", Description: "Machine press performed on a 45-degree sled."},
	{Name: "Romanian Deadlift", MuscleGroup: "hamstrings", Description: "Hip hinge with minimal knee bend."},
	{Name: "Deadlift", MuscleGroup: "back", Description: "Conventional barbell deadlift from the floor."},
	{Name: "Standing Calf Raise", MuscleGroup: "calves", Description: "Calf raise with load on the shoulders."},
	{Name: "Bench Press", MuscleGroup: "chest", Description: "Flat barbell bench press."},
	{Name: "Incline Dumbbell Press", MuscleGroup: "chest", Description: "Press on a 30-degree incline bench."},
	{Name: "Overhead Press", MuscleGroup: "shoulders", Description: "Standing barbell press overhead."},
	{Name: "Lateral Raise", MuscleGroup: "shoulders", Description: "Dumbbell raise to shoulder height."},
	{Name: "Pull-Up", MuscleGroup: "back", Description: "Bodyweight vertical pull, overhand grip."},
	{Name: "Barbell Row", MuscleGroup: "back", Description: "Bent-over row with a barbell."},
	{Name: "Lat Pulldown", MuscleGroup: "back", Description: "Cable pulldown to the upper chest."},
	{Name: "Barbell Curl", MuscleGroup: "biceps", Description: "Standing curl with a straight bar."},
	{Name: "Hammer Curl", MuscleGroup: "biceps", Description: "Neutral-grip dumbbell curl."},
	{Name: "Triceps Pushdown", MuscleGroup: "triceps", Description: "Cable pushdown with a rope attachment."},
	{Name: "Skull Crusher", MuscleGroup: "triceps", Description: "Lying triceps extension with an EZ bar."},
	{Name: "Plank", MuscleGroup: "core", Description: "Isometric hold on forearms and toes."},
	{Name: "Hanging Leg Raise", MuscleGroup: "core", Description: "Leg raise while hanging from a bar."},
	{Name: "Hip Thrust", MuscleGroup: "glutes", Description: "Barbell hip thrust with shoulders on a bench."},
}

// SeedExercises inserts the exercise catalog if the table is empty.
// Safe to call on every startup.
func SeedExercises(repo repository.ExerciseRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Exercise catalog already seeded (%d exercises)", count)
		return nil
	}

	for i := range predefinedExercises {
		if err := repo.Create(&predefinedExercises[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d predefined exercises", len(predefinedExercises))
	return nil
}
