package models

// Exercise is read-only reference data seeded once at install time.
// Users never create or mutate exercises; routines reference them.
type Exercise struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name        string `gorm:"unique" json:"name" example:"Barbell Squat"`
	MuscleGroup string `json:"muscle_group" example:"legs"`
	Description string `gorm:"type:text" json:"description"`
}
