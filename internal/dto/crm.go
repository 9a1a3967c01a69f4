package dto

import (
	"time"

	"connectvault/internal/model"
	"connectvault/internal/service"
)

// ---------- contacts ----------

type CreateContactRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email"`
	Platform *string `json:"platform"`
	Notes    *string `json:"notes"`
}

func (r *CreateContactRequest) ToInput() service.ContactInput {
	return service.ContactInput{
		Name:     &r.Name,
		Email:    r.Email,
		Platform: r.Platform,
		Notes:    r.Notes,
	}
}

type UpdateContactRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Platform *string `json:"platform"`
	Notes    *string `json:"notes"`
}

func (r *UpdateContactRequest) ToInput() service.ContactInput {
	return service.ContactInput{
		Name:     r.Name,
		Email:    r.Email,
		Platform: r.Platform,
		Notes:    r.Notes,
	}
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Platform  string    `json:"platform,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContact(c *model.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Platform:  c.Platform,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func FromContacts(contacts []*model.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = FromContact(c)
	}
	return out
}

// ---------- tasks ----------

type CreateTaskRequest struct {
	ContactID   *string `json:"contact_id"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

func (r *CreateTaskRequest) ToInput() service.TaskInput {
	return service.TaskInput{
		ContactID:   r.ContactID,
		Title:       &r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type UpdateTaskRequest struct {
	ContactID   *string `json:"contact_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

func (r *UpdateTaskRequest) ToInput() service.TaskInput {
	return service.TaskInput{
		ContactID:   r.ContactID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type TaskResponse struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromTask(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ContactID:   t.ContactID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func FromTasks(tasks []*model.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = FromTask(t)
	}
	return out
}

// ---------- promo links ----------

type CreatePromoLinkRequest struct {
	OfferName    string  `json:"offer_name" validate:"required"`
	PromoLink    string  `json:"promo_link" validate:"required"`
	TrackingLink *string `json:"tracking_link"`
}

func (r *CreatePromoLinkRequest) ToInput() service.PromoLinkInput {
	return service.PromoLinkInput{
		OfferName:    &r.OfferName,
		PromoLink:    &r.PromoLink,
		TrackingLink: r.TrackingLink,
	}
}

type UpdatePromoLinkRequest struct {
	OfferName    *string `json:"offer_name"`
	PromoLink    *string `json:"promo_link"`
	TrackingLink *string `json:"tracking_link"`
}

func (r *UpdatePromoLinkRequest) ToInput() service.PromoLinkInput {
	return service.PromoLinkInput{
		OfferName:    r.OfferName,
		PromoLink:    r.PromoLink,
		TrackingLink: r.TrackingLink,
	}
}

type PromoLinkResponse struct {
	ID           string    `json:"id"`
	OfferName    string    `json:"offer_name"`
	PromoLink    string    `json:"promo_link"`
	TrackingLink string    `json:"tracking_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPromoLink(l *model.PromoLink) PromoLinkResponse {
	return PromoLinkResponse{
		ID:           l.ID,
		OfferName:    l.OfferName,
		PromoLink:    l.PromoLink,
		TrackingLink: l.TrackingLink,
		CreatedAt:    l.CreatedAt,
	}
}

func FromPromoLinks(links []*model.PromoLink) []PromoLinkResponse {
	out := make([]PromoLinkResponse, len(links))
	for i, l := range links {
		out[i] = FromPromoLink(l)
	}
	return out
}

// ---------- dashboard ----------

type DashboardSummaryResponse struct {
	TotalContacts     int64                     `json:"total_contacts"`
	TasksDueToday     int64                     `json:"tasks_due_today"`
	ActivePromoLinks  int64                     `json:"active_promo_links"`
	CommissionSummary CommissionSummaryResponse `json:"commission_summary"`
}

func FromDashboardSummary(s *service.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalContacts:     s.TotalContacts,
		TasksDueToday:     s.TasksDueToday,
		ActivePromoLinks:  s.ActivePromoLinks,
		CommissionSummary: FromCommissionSummary(&s.Commissions),
	}
}
