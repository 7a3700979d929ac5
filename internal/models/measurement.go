package models

import (
	"time"
)

// BodyMeasurement is one full-body measurement event: body weight plus
// 14 circumference measurements, left/right paired for four body parts.
// Records are only ever created or replaced whole, never patched.
type BodyMeasurement struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID       uint      `gorm:"index" json:"user_id" example:"1"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TakenAt      time.Time `gorm:"index" json:"taken_at" example:"2023-01-01T08:00:00Z"`
	Weight       float64   `json:"weight" example:"70"`
	Neck         float64   `json:"neck" example:"38"`
	Shoulders    float64   `json:"shoulders" example:"110"`
	Chest        float64   `json:"chest" example:"95"`
	Waist        float64   `json:"waist" example:"80"`
	Hip          float64   `json:"hip" example:"95"`
	Glutes       float64   `json:"glutes" example:"95"`
	ThighLeft    float64   `json:"thigh_left" example:"55"`
	ThighRight   float64   `json:"thigh_right" example:"54"`
	CalfLeft     float64   `json:"calf_left" example:"38"`
	CalfRight    float64   `json:"calf_right" example:"38"`
	BicepsLeft   float64   `json:"biceps_left" example:"35"`
	BicepsRight  float64   `json:"biceps_right" example:"34"`
	ForearmLeft  float64   `json:"forearm_left" example:"28"`
	ForearmRight float64   `json:"forearm_right" example:"28"`
}
