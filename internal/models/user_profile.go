package models

import (
	"time"

	"gorm.io/datatypes"
)

// Availability statuses for a worker profile.
const (
	AvailabilityAvailable   = "available"
	AvailabilityWorking     = "working"
	AvailabilityUnavailable = "unavailable"
)

// @description Construction-specific profile data, one per user
type UserProfile struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	UserID             string         `gorm:"uniqueIndex;not null" json:"user_id" example:"usr_8f2k1"`
	Trade              string         `json:"trade" example:"electrician"`
	YearsExperience    *int           `json:"years_experience" example:"7"`
	Location           string         `json:"location" example:"Brisbane, QLD"`
	AvailabilityStatus string         `gorm:"default:available" json:"availability_status" example:"available"`
	HourlyRate         *float64       `json:"hourly_rate" example:"52.50"`
	Bio                string         `json:"bio" example:"Licensed sparky, commercial fit-outs"`
	Skills             datatypes.JSON `gorm:"type:jsonb" json:"skills" swaggertype:"array,string"`
	Preferences        datatypes.JSON `gorm:"type:jsonb" json:"preferences" swaggertype:"object"`
	CreatedAt          time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}
