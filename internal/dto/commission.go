package dto

import (
	"encoding/json"
	"time"

	"connectvault/internal/model"
	"connectvault/internal/service"
)

type CreateCommissionRequest struct {
	ProgramName  string      `json:"program_name" validate:"required"`
	Amount       json.Number `json:"amount" validate:"required"`
	Status       *string     `json:"status"`
	ExpectedDate *string     `json:"expected_date"`
	PaidDate     *string     `json:"paid_date"`
	PromoLinkID  *string     `json:"promo_link_id"`
	Notes        *string     `json:"notes"`
}

func (r *CreateCommissionRequest) ToInput() service.CommissionInput {
	amount := r.Amount.String()
	return service.CommissionInput{
		ProgramName:  &r.ProgramName,
		Amount:       &amount,
		Status:       r.Status,
		ExpectedDate: r.ExpectedDate,
		PaidDate:     r.PaidDate,
		PromoLinkID:  r.PromoLinkID,
		Notes:        r.Notes,
	}
}

// UpdateCommissionRequest is a partial update: nil fields keep their prior
// value, a supplied empty date clears it.
type UpdateCommissionRequest struct {
	ProgramName  *string      `json:"program_name"`
	Amount       *json.Number `json:"amount"`
	Status       *string      `json:"status"`
	ExpectedDate *string      `json:"expected_date"`
	PaidDate     *string      `json:"paid_date"`
	PromoLinkID  *string      `json:"promo_link_id"`
	Notes        *string      `json:"notes"`
}

func (r *UpdateCommissionRequest) ToInput() service.CommissionInput {
	in := service.CommissionInput{
		ProgramName:  r.ProgramName,
		Status:       r.Status,
		ExpectedDate: r.ExpectedDate,
		PaidDate:     r.PaidDate,
		PromoLinkID:  r.PromoLinkID,
		Notes:        r.Notes,
	}
	if r.Amount != nil {
		amount := r.Amount.String()
		in.Amount = &amount
	}
	return in
}

type CommissionResponse struct {
	ID           string    `json:"id"`
	ProgramName  string    `json:"program_name"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	ExpectedDate string    `json:"expected_date,omitempty"`
	PaidDate     string    `json:"paid_date,omitempty"`
	PromoLinkID  string    `json:"promo_link_id,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromCommission(c *model.Commission) CommissionResponse {
	return CommissionResponse{
		ID:           c.ID,
		ProgramName:  c.ProgramName,
		Amount:       c.Amount.StringFixed(2),
		Status:       c.Status,
		ExpectedDate: formatDate(c.ExpectedDate),
		PaidDate:     formatDate(c.PaidDate),
		PromoLinkID:  c.PromoLinkID,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

func FromCommissions(commissions []*model.Commission) []CommissionResponse {
	out := make([]CommissionResponse, len(commissions))
	for i, c := range commissions {
		out[i] = FromCommission(c)
	}
	return out
}

type CommissionSummaryResponse struct {
	TotalPaid    string `json:"total_paid"`
	TotalUnpaid  string `json:"total_unpaid"`
	TotalPending string `json:"total_pending"`
}

func FromCommissionSummary(s *service.CommissionSummary) CommissionSummaryResponse {
	return CommissionSummaryResponse{
		TotalPaid:    s.TotalPaid.StringFixed(2),
		TotalUnpaid:  s.TotalUnpaid.StringFixed(2),
		TotalPending: s.TotalPending.StringFixed(2),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
