package repository

import (
	"context"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

type PromoLinkRepository interface {
	Insert(ctx context.Context, link *model.PromoLink) error
	Find(ctx context.Context, userID, id string) (*model.PromoLink, error)
	List(ctx context.Context, userID string) ([]*model.PromoLink, error)
	Replace(ctx context.Context, link *model.PromoLink) error
	Remove(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int64, error)
}

type promoLinkRepoImpl struct {
	db *gorm.DB
}

func NewPromoLinkRepository(db *gorm.DB) PromoLinkRepository {
	return &promoLinkRepoImpl{
		db: db,
	}
}

func (r *promoLinkRepoImpl) Insert(ctx context.Context, link *model.PromoLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *promoLinkRepoImpl) Find(ctx context.Context, userID, id string) (*model.PromoLink, error) {
	var link model.PromoLink
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&link).Error
	if err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *promoLinkRepoImpl) List(ctx context.Context, userID string) ([]*model.PromoLink, error) {
	var links []*model.PromoLink
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	return links, nil
}

func (r *promoLinkRepoImpl) Replace(ctx context.Context, link *model.PromoLink) error {
	result := r.db.WithContext(ctx).Model(&model.PromoLink{}).
		Where("id = ? AND user_id = ?", link.ID, link.UserID).
		Updates(map[string]interface{}{
			"offer_name":    link.OfferName,
			"promo_link":    link.PromoLink,
			"tracking_link": link.TrackingLink,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *promoLinkRepoImpl) Remove(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PromoLink{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *promoLinkRepoImpl) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PromoLink{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}
