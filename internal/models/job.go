package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job engagement types.
const (
	JobTypePermanent = "permanent"
	JobTypeContract  = "contract"
	JobTypeCasual    = "casual"
)

// @description Employer-posted job opportunity, created by the ingestion pipeline
type Job struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	Title        string         `gorm:"not null" json:"title" example:"Commercial Electrician"`
	Company      string         `gorm:"not null" json:"company" example:"Hutchinson Builders"`
	Location     string         `gorm:"not null" json:"location" example:"Sydney, NSW"`
	Description  string         `json:"description" example:"Fit-out work on a 12-storey commercial tower"`
	Requirements datatypes.JSON `gorm:"type:jsonb" json:"requirements" swaggertype:"array,string"`
	PayRange     string         `json:"pay_range" example:"$45-$55/hr"`
	StartDate    *time.Time     `json:"start_date" example:"2023-02-01T00:00:00Z"`
	EndDate      *time.Time     `json:"end_date" example:"2023-08-01T00:00:00Z"`
	JobType      string         `json:"job_type" example:"contract"`
	IsActive     bool           `gorm:"default:true" json:"is_active" example:"true"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}
