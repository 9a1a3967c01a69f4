package repository

import (
	"context"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Insert(ctx context.Context, contact *model.Contact) error
	Find(ctx context.Context, userID, id string) (*model.Contact, error)
	List(ctx context.Context, userID string) ([]*model.Contact, error)
	Replace(ctx context.Context, contact *model.Contact) error
	Remove(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int64, error)
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepoImpl{
		db: db,
	}
}

func (r *contactRepoImpl) Insert(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepoImpl) Find(ctx context.Context, userID, id string) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (r *contactRepoImpl) List(ctx context.Context, userID string) ([]*model.Contact, error) {
	var contacts []*model.Contact
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepoImpl) Replace(ctx context.Context, contact *model.Contact) error {
	result := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]interface{}{
			"name":     contact.Name,
			"email":    contact.Email,
			"platform": contact.Platform,
			"notes":    contact.Notes,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *contactRepoImpl) Remove(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Contact{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *contactRepoImpl) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}
