package models

import (
	"time"
)

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// WorkoutSession is one real-world occurrence of performing a routine.
// It starts active and is explicitly completed; set logs may only be
// attached while it is active.
type WorkoutSession struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	RoutineID uint      `gorm:"index" json:"routine_id" example:"1"`
	Routine   Routine   `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE" json:"-"`
	StartedAt time.Time `json:"started_at" example:"2023-01-01T18:00:00Z"`
	Status    string    `gorm:"default:active" json:"status" example:"active"`
}

// SetLog records what was actually lifted for one set during a session.
// Its cardinality is independent of the planned sets.
type SetLog struct {
	ID                uint            `gorm:"primaryKey" json:"id" example:"1"`
	SessionID         uint            `gorm:"index" json:"session_id" example:"1"`
	Session           WorkoutSession  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	RoutineExerciseID uint            `gorm:"index" json:"routine_exercise_id" example:"1"`
	RoutineExercise   RoutineExercise `gorm:"foreignKey:RoutineExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	SetNumber         int             `json:"set_number" example:"1"`
	Weight            float64         `json:"weight" example:"80"`
	Reps              int             `json:"reps" example:"5"`
	Completed         bool            `json:"completed" example:"true"`
}
