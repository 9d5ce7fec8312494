package repository

import (
	"context"
	"time"

	"workpass/internal/models"

	"gorm.io/gorm"
)

type CredentialRepository interface {
	Create(ctx context.Context, credential *models.Credential) error
	FindActiveByUserID(ctx context.Context, userID string) ([]models.Credential, error)
	FindByID(ctx context.Context, id uint) (*models.Credential, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) (*models.Credential, error)
	SoftDelete(ctx context.Context, id uint, userID string) (bool, error)
	FindExpiringWithin(ctx context.Context, userID string, days int) ([]models.Credential, error)
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db}
}

func (r *credentialRepository) Create(ctx context.Context, credential *models.Credential) error {
	return r.db.WithContext(ctx).Create(credential).Error
}

func (r *credentialRepository) FindActiveByUserID(ctx context.Context, userID string) ([]models.Credential, error) {
	var credentials []models.Credential
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&credentials).Error
	return credentials, err
}

func (r *credentialRepository) FindByID(ctx context.Context, id uint) (*models.Credential, error) {
	var credential models.Credential
	err := r.db.WithContext(ctx).First(&credential, id).Error
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) Update(ctx context.Context, id uint, data map[string]interface{}) (*models.Credential, error) {
	var credential models.Credential
	if err := r.db.WithContext(ctx).First(&credential, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&credential).Updates(data).Error; err != nil {
		return nil, err
	}
	return &credential, nil
}

// SoftDelete flips is_active off. The where clause carries both id and
// owner so a foreign row reads as not found rather than forbidden.
func (r *credentialRepository) SoftDelete(ctx context.Context, id uint, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Credential{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *credentialRepository) FindExpiringWithin(ctx context.Context, userID string, days int) ([]models.Credential, error) {
	cutoff := time.Now().AddDate(0, 0, days)

	var credentials []models.Credential
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", userID, true, cutoff).
		Order("expiry_date ASC").
		Find(&credentials).Error
	return credentials, err
}
