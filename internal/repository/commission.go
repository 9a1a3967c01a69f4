package repository

import (
	"context"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

// CommissionRepository is the record store for commission entries. Every
// lookup is scoped by user_id; a row owned by someone else is
// indistinguishable from a missing row (gorm.ErrRecordNotFound either way).
type CommissionRepository interface {
	Insert(ctx context.Context, commission *model.Commission) error
	Find(ctx context.Context, userID, id string) (*model.Commission, error)
	List(ctx context.Context, userID string) ([]*model.Commission, error)
	Replace(ctx context.Context, commission *model.Commission) error
	Remove(ctx context.Context, userID, id string) error
}

type commissionRepoImpl struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &commissionRepoImpl{
		db: db,
	}
}

func (r *commissionRepoImpl) Insert(ctx context.Context, commission *model.Commission) error {
	return r.db.WithContext(ctx).Create(commission).Error
}

func (r *commissionRepoImpl) Find(ctx context.Context, userID, id string) (*model.Commission, error) {
	var commission model.Commission
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&commission).Error
	if err != nil {
		return nil, err
	}

	return &commission, nil
}

func (r *commissionRepoImpl) List(ctx context.Context, userID string) ([]*model.Commission, error) {
	var commissions []*model.Commission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}

	return commissions, nil
}

func (r *commissionRepoImpl) Replace(ctx context.Context, commission *model.Commission) error {
	result := r.db.WithContext(ctx).Model(&model.Commission{}).
		Where("id = ? AND user_id = ?", commission.ID, commission.UserID).
		Updates(map[string]interface{}{
			"program_name":  commission.ProgramName,
			"amount":        commission.Amount,
			"status":        commission.Status,
			"expected_date": commission.ExpectedDate,
			"paid_date":     commission.PaidDate,
			"promo_link_id": commission.PromoLinkID,
			"notes":         commission.Notes,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *commissionRepoImpl) Remove(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Commission{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
