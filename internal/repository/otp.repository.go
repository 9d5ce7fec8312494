package repository

import (
	"context"
	"time"

	"workpass/internal/models"

	"gorm.io/gorm"
)

// OtpRepository is the one-time-password ledger. Issuing a new code
// does not invalidate earlier outstanding codes for the same
// identifier; single use plus the short expiry bound the exposure.
type OtpRepository interface {
	Create(ctx context.Context, otp *models.OtpVerification) error
	Consume(ctx context.Context, identifier, code, channel string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db}
}

func (r *otpRepository) Create(ctx context.Context, otp *models.OtpVerification) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// Consume marks the matching unused, unexpired code as used and reports
// whether one existed. The single conditional UPDATE makes the
// first-match-wins guarantee hold without any application-level lock.
func (r *otpRepository) Consume(ctx context.Context, identifier, code, channel string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.OtpVerification{}).
		Where("identifier = ? AND code = ? AND type = ? AND is_used = ? AND expires_at >= ?",
			identifier, code, channel, false, time.Now()).
		Update("is_used", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// PurgeExpired deletes rows past their expiry. The predicate can never
// match a row a concurrent Consume could still succeed on.
func (r *otpRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.OtpVerification{})
	return result.RowsAffected, result.Error
}
