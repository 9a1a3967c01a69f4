package repository

import (
	"context"
	"time"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Insert(ctx context.Context, task *model.Task) error
	Find(ctx context.Context, userID, id string) (*model.Task, error)
	List(ctx context.Context, userID string) ([]*model.Task, error)
	Replace(ctx context.Context, task *model.Task) error
	Remove(ctx context.Context, userID, id string) error
	CountDueToday(ctx context.Context, userID string, day time.Time) (int64, error)
}

type taskRepoImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepoImpl{
		db: db,
	}
}

func (r *taskRepoImpl) Insert(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepoImpl) Find(ctx context.Context, userID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *taskRepoImpl) List(ctx context.Context, userID string) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepoImpl) Replace(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"contact_id":  task.ContactID,
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"due_date":    task.DueDate,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *taskRepoImpl) Remove(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// CountDueToday counts open tasks due within [day, day+24h). day is the
// caller's midnight, UTC.
func (r *taskRepoImpl) CountDueToday(ctx context.Context, userID string, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", userID).
		Where("due_date >= ? AND due_date < ?", day, day.Add(24*time.Hour)).
		Where("status <> ?", model.TaskStatusDone).
		Count(&count).Error

	return count, err
}
