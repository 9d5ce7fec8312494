package models

import (
	"time"
)

// OTP delivery channels.
const (
	OtpChannelEmail = "email"
	OtpChannelSMS   = "sms"
)

// @description One-time verification code, single-use
type OtpVerification struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	Identifier string    `gorm:"index;not null" json:"identifier" example:"worker@example.com"`
	Code       string    `gorm:"not null" json:"code" example:"483920"`
	Channel    string    `gorm:"column:type;not null" json:"type" example:"email"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at" example:"2023-01-01T00:10:00Z"`
	IsUsed     bool      `gorm:"default:false" json:"is_used" example:"false"`
	CreatedAt  time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}
