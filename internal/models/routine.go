package models

import (
	"time"
)

type Routine struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UserID    uint      `gorm:"index" json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `json:"name" example:"Push Day"`
}

// RoutineExercise places one predefined exercise into one routine. The
// same exercise may appear more than once in a routine.
type RoutineExercise struct {
	ID         uint     `gorm:"primaryKey" json:"id" example:"1"`
	RoutineID  uint     `gorm:"index" json:"routine_id" example:"1"`
	Routine    Routine  `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE" json:"-"`
	ExerciseID uint     `json:"exercise_id" example:"1"`
	Exercise   Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}

// PlannedSet is the plan for one set: what the user intends to lift.
// Actual performance is recorded separately in SetLog.
type PlannedSet struct {
	ID                uint            `gorm:"primaryKey" json:"id" example:"1"`
	RoutineExerciseID uint            `gorm:"index" json:"routine_exercise_id" example:"1"`
	RoutineExercise   RoutineExercise `gorm:"foreignKey:RoutineExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	SetNumber         int             `json:"set_number" example:"1"`
	Weight            float64         `json:"weight" example:"80"`
	Reps              int             `json:"reps" example:"8"`
	RestSeconds       int             `json:"rest_seconds" example:"90"`
}
