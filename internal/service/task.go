package service

import (
	"context"
	"strings"
	"time"

	"connectvault/internal/apperr"
	"connectvault/internal/model"
	"connectvault/internal/repository"

	"github.com/google/uuid"
)

type TaskInput struct {
	ContactID   *string
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*model.Task, error)
	Create(ctx context.Context, ownerID string, in TaskInput) (*model.Task, error)
	Get(ctx context.Context, ownerID, id string) (*model.Task, error)
	Update(ctx context.Context, ownerID, id string, in TaskInput) (*model.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type taskServiceImpl struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(
	taskRepo repository.TaskRepository,
) TaskService {
	return &taskServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *taskServiceImpl) List(ctx context.Context, ownerID string) ([]*model.Task, error) {
	tasks, err := s.taskRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list tasks", err)
	}

	return tasks, nil
}

func (s *taskServiceImpl) Create(ctx context.Context, ownerID string, in TaskInput) (*model.Task, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}

	task := &model.Task{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     strings.TrimSpace(*in.Title),
		Status:    model.TaskStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	var err error
	if in.Status != nil {
		if task.Status, err = parseTaskStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.DueDate != nil {
		if task.DueDate, err = parseDueDate(*in.DueDate); err != nil {
			return nil, err
		}
	}
	if in.ContactID != nil {
		task.ContactID = *in.ContactID
	}
	if in.Description != nil {
		task.Description = *in.Description
	}

	if err := s.taskRepo.Insert(ctx, task); err != nil {
		return nil, apperr.Store("insert task", err)
	}

	return task, nil
}

func (s *taskServiceImpl) Get(ctx context.Context, ownerID, id string) (*model.Task, error) {
	task, err := s.taskRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find task", "task", err)
	}

	return task, nil
}

func (s *taskServiceImpl) Update(ctx context.Context, ownerID, id string, in TaskInput) (*model.Task, error) {
	task, err := s.taskRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find task", "task", err)
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperr.Validation("title", "must not be empty")
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Status != nil {
		if task.Status, err = parseTaskStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.DueDate != nil {
		if task.DueDate, err = parseDueDate(*in.DueDate); err != nil {
			return nil, err
		}
	}
	if in.ContactID != nil {
		task.ContactID = *in.ContactID
	}
	if in.Description != nil {
		task.Description = *in.Description
	}

	if err := s.taskRepo.Replace(ctx, task); err != nil {
		return nil, storeErr("replace task", "task", err)
	}

	return task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.taskRepo.Remove(ctx, ownerID, id); err != nil {
		return storeErr("remove task", "task", err)
	}

	return nil
}

func parseTaskStatus(s string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(s))
	if !model.ValidTaskStatus(status) {
		return "", apperr.Validation("status", "must be one of pending, in_progress, done")
	}
	return status, nil
}

// parseDueDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date; an
// empty string clears the due date.
func parseDueDate(s string) (*time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return &t, nil
	}
	return nil, apperr.Validation("due_date", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
}
