package models

import (
	"time"
)

// Credential types with scoring weight.
const (
	CredentialTypeWhiteCard        = "white_card"
	CredentialTypeFirstAid         = "first_aid"
	CredentialTypeTradeCertificate = "trade_certificate"
	CredentialTypeLicense          = "license"
)

// Credential categories.
const (
	CredentialCategorySafety  = "safety"
	CredentialCategoryTrade   = "trade"
	CredentialCategoryMedical = "medical"
	CredentialCategoryLicense = "license"
)

// Verification states for an uploaded credential.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// @description Uploaded credential document with verification status.
// Soft delete is the is_active flag; inactive rows never appear in listings.
type Credential struct {
	ID                 uint       `gorm:"primaryKey" json:"id" example:"1"`
	UserID             string     `gorm:"index;not null" json:"user_id" example:"usr_8f2k1"`
	Type               string     `gorm:"not null" json:"type" example:"white_card"`
	Category           string     `gorm:"not null" json:"category" example:"safety"`
	Name               string     `gorm:"not null" json:"name" example:"General Construction Induction Card"`
	IssuingAuthority   string     `json:"issuing_authority" example:"SafeWork NSW"`
	IssueDate          *time.Time `json:"issue_date" example:"2022-03-15T00:00:00Z"`
	ExpiryDate         *time.Time `json:"expiry_date" example:"2027-03-15T00:00:00Z"`
	CertificateNumber  string     `json:"certificate_number" example:"WC-1042388"`
	FileURL            string     `json:"file_url" example:"/uploads/3f7c9a.pdf"`
	FileName           string     `json:"file_name" example:"white-card.pdf"`
	FileSize           int64      `json:"file_size" example:"204800"`
	VerificationStatus string     `gorm:"default:pending" json:"verification_status" example:"pending"`
	VerificationNotes  string     `json:"verification_notes" example:""`
	IsActive           bool       `gorm:"default:true" json:"is_active" example:"true"`
	CreatedAt          time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}
