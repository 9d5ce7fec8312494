package models

import (
	"time"

	"gorm.io/datatypes"
)

// Action tags written by the API layer.
const (
	ActionCreateProfile    = "create_profile"
	ActionUpdateProfile    = "update_profile"
	ActionUploadCredential = "upload_credential"
	ActionDeleteCredential = "delete_credential"
	ActionApplyJob         = "apply_job"
)

// @description Append-only activity timeline entry
type UserActivity struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	UserID      string         `gorm:"index;not null" json:"user_id" example:"usr_8f2k1"`
	Action      string         `gorm:"not null" json:"action" example:"upload_credential"`
	Description string         `json:"description" example:"Uploaded First Aid Certificate"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata" swaggertype:"object"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
}
