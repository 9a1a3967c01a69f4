package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"connectvault/internal/apperr"
	"connectvault/internal/model"
	"connectvault/internal/repository"

	"github.com/google/uuid"
)

type ContactInput struct {
	Name     *string
	Email    *string
	Platform *string
	Notes    *string
}

type ContactService interface {
	List(ctx context.Context, ownerID string) ([]*model.Contact, error)
	Create(ctx context.Context, ownerID string, in ContactInput) (*model.Contact, error)
	Get(ctx context.Context, ownerID, id string) (*model.Contact, error)
	Update(ctx context.Context, ownerID, id string, in ContactInput) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, id string) error
	ExportCSV(ctx context.Context, ownerID string, w io.Writer) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
}

func NewContactService(
	contactRepo repository.ContactRepository,
) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) List(ctx context.Context, ownerID string) ([]*model.Contact, error) {
	contacts, err := s.contactRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list contacts", err)
	}

	return contacts, nil
}

func (s *contactServiceImpl) Create(ctx context.Context, ownerID string, in ContactInput) (*model.Contact, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}

	contact := &model.Contact{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Name:      strings.TrimSpace(*in.Name),
		CreatedAt: time.Now().UTC(),
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Platform != nil {
		contact.Platform = *in.Platform
	}
	if in.Notes != nil {
		contact.Notes = *in.Notes
	}

	if err := s.contactRepo.Insert(ctx, contact); err != nil {
		return nil, apperr.Store("insert contact", err)
	}

	return contact, nil
}

func (s *contactServiceImpl) Get(ctx context.Context, ownerID, id string) (*model.Contact, error) {
	contact, err := s.contactRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find contact", "contact", err)
	}

	return contact, nil
}

func (s *contactServiceImpl) Update(ctx context.Context, ownerID, id string, in ContactInput) (*model.Contact, error) {
	contact, err := s.contactRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find contact", "contact", err)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name", "must not be empty")
		}
		contact.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Platform != nil {
		contact.Platform = *in.Platform
	}
	if in.Notes != nil {
		contact.Notes = *in.Notes
	}

	if err := s.contactRepo.Replace(ctx, contact); err != nil {
		return nil, storeErr("replace contact", "contact", err)
	}

	return contact, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.contactRepo.Remove(ctx, ownerID, id); err != nil {
		return storeErr("remove contact", "contact", err)
	}

	return nil
}

func (s *contactServiceImpl) ExportCSV(ctx context.Context, ownerID string, w io.Writer) error {
	contacts, err := s.contactRepo.List(ctx, ownerID)
	if err != nil {
		return apperr.Store("list contacts", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "email", "platform", "notes"}); err != nil {
		return err
	}
	for _, contact := range contacts {
		record := []string{contact.Name, contact.Email, contact.Platform, contact.Notes}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
