package models

import (
	"time"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// @description Job application, unique per (user, job)
type JobApplication struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID     string    `gorm:"index:idx_application_user_job,unique;not null" json:"user_id" example:"usr_8f2k1"`
	JobID      uint      `gorm:"index:idx_application_user_job,unique;not null" json:"job_id" example:"1"`
	Status     string    `gorm:"default:pending" json:"status" example:"pending"`
	MatchScore *int      `json:"match_score" example:"82"`
	AppliedAt  time.Time `gorm:"autoCreateTime" json:"applied_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

// JobApplicationWithJob is the joined projection returned by listing
// queries, an explicit shape instead of a lazy relation.
type JobApplicationWithJob struct {
	JobApplication
	Job Job `json:"job"`
}
