package repository

import (
	"context"
	"time"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

type PasswordResetRepository interface {
	Insert(ctx context.Context, reset *model.PasswordReset) error
	// FindValid returns the reset row for token only if it is unused and
	// not expired as of now.
	FindValid(ctx context.Context, token string, now time.Time) (*model.PasswordReset, error)
	MarkUsed(ctx context.Context, id uint) error
}

type passwordResetRepoImpl struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepoImpl{
		db: db,
	}
}

func (r *passwordResetRepoImpl) Insert(ctx context.Context, reset *model.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

func (r *passwordResetRepoImpl) FindValid(ctx context.Context, token string, now time.Time) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	err := r.db.WithContext(ctx).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		First(&reset).Error
	if err != nil {
		return nil, err
	}

	return &reset, nil
}

func (r *passwordResetRepoImpl) MarkUsed(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&model.PasswordReset{}).
		Where("id = ?", id).
		Update("used", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
