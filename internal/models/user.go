package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `json:"name" example:"Ana"`
	Email        string         `gorm:"unique" json:"email" example:"ana@example.com"`
	PasswordHash string         `json:"-"`
	Weight       *float64       `json:"weight,omitempty" example:"70.5"`
	Height       *float64       `json:"height,omitempty" example:"175"`
	Goal         string         `json:"goal" example:"lose fat"`
}
