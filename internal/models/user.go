package models

import (
	"time"
)

// Roles understood by the platform.
const (
	RoleTradesperson = "tradesperson"
	RoleSupervisor   = "supervisor"
	RoleForeman      = "foreman"
	RoleApprentice   = "apprentice"
)

// @description User model, mirrored from the identity provider on first login
type User struct {
	ID                 string    `gorm:"primaryKey" json:"id" example:"usr_8f2k1"`
	Email              string    `gorm:"uniqueIndex" json:"email" example:"worker@example.com"`
	FirstName          string    `json:"first_name" example:"Dale"`
	LastName           string    `json:"last_name" example:"Harper"`
	ProfileImageURL    string    `json:"profile_image_url" example:"https://cdn.example.com/u/8f2k1.png"`
	Phone              string    `json:"phone" example:"+61400123456"`
	Role               string    `json:"role" example:"tradesperson"`
	ExperienceLevel    string    `json:"experience_level" example:"mid"`
	IsEmailVerified    bool      `gorm:"default:false" json:"is_email_verified" example:"false"`
	IsPhoneVerified    bool      `gorm:"default:false" json:"is_phone_verified" example:"false"`
	WorkReadinessScore int       `gorm:"default:0" json:"work_readiness_score" example:"70"`
	CreatedAt          time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}
