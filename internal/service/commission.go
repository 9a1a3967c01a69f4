package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"connectvault/internal/apperr"
	"connectvault/internal/model"
	"connectvault/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// csvHeader covers every caller-settable field, in stable column order.
var csvHeader = []string{"program_name", "amount", "status", "expected_date", "paid_date", "promo_link_id", "notes"}

// CommissionInput carries caller-supplied fields for create and update.
// Nil means "not supplied": create requires program name and amount, update
// keeps the prior value. A supplied empty date clears it.
type CommissionInput struct {
	ProgramName  *string
	Amount       *string
	Status       *string
	ExpectedDate *string
	PaidDate     *string
	PromoLinkID  *string
	Notes        *string
}

// CommissionSummary is recomputed from the live entry set on every call,
// never cached.
type CommissionSummary struct {
	TotalPaid    decimal.Decimal
	TotalUnpaid  decimal.Decimal
	TotalPending decimal.Decimal
}

type CommissionService interface {
	List(ctx context.Context, ownerID string) ([]*model.Commission, error)
	Create(ctx context.Context, ownerID string, in CommissionInput) (*model.Commission, error)
	Get(ctx context.Context, ownerID, id string) (*model.Commission, error)
	Update(ctx context.Context, ownerID, id string, in CommissionInput) (*model.Commission, error)
	Delete(ctx context.Context, ownerID, id string) error
	Summarize(ctx context.Context, ownerID string) (*CommissionSummary, error)
	ExportCSV(ctx context.Context, ownerID string, w io.Writer) error
	ExportXLSX(ctx context.Context, ownerID string) (*excelize.File, error)
}

type commissionServiceImpl struct {
	commissionRepo repository.CommissionRepository
}

func NewCommissionService(
	commissionRepo repository.CommissionRepository,
) CommissionService {
	return &commissionServiceImpl{
		commissionRepo: commissionRepo,
	}
}

func (s *commissionServiceImpl) List(ctx context.Context, ownerID string) ([]*model.Commission, error) {
	commissions, err := s.commissionRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list commissions", err)
	}

	return commissions, nil
}

func (s *commissionServiceImpl) Create(ctx context.Context, ownerID string, in CommissionInput) (*model.Commission, error) {
	if in.ProgramName == nil {
		return nil, apperr.Validation("program_name", "is required")
	}
	programName, err := parseProgramName(*in.ProgramName)
	if err != nil {
		return nil, err
	}

	if in.Amount == nil {
		return nil, apperr.Validation("amount", "is required")
	}
	amount, err := parseAmount(*in.Amount)
	if err != nil {
		return nil, err
	}

	status := model.CommissionStatusPending
	if in.Status != nil {
		if status, err = parseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	commission := &model.Commission{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		ProgramName: programName,
		Amount:      amount,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if in.ExpectedDate != nil {
		if commission.ExpectedDate, err = parseDate("expected_date", *in.ExpectedDate); err != nil {
			return nil, err
		}
	}
	if in.PaidDate != nil {
		if commission.PaidDate, err = parseDate("paid_date", *in.PaidDate); err != nil {
			return nil, err
		}
	}
	if in.PromoLinkID != nil {
		commission.PromoLinkID = *in.PromoLinkID
	}
	if in.Notes != nil {
		commission.Notes = *in.Notes
	}

	if err := s.commissionRepo.Insert(ctx, commission); err != nil {
		return nil, apperr.Store("insert commission", err)
	}

	return commission, nil
}

func (s *commissionServiceImpl) Get(ctx context.Context, ownerID, id string) (*model.Commission, error) {
	commission, err := s.commissionRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find commission", "commission", err)
	}

	return commission, nil
}

// Update applies the supplied fields only; validation runs fully before
// anything is written, so a rejected update leaves the entry untouched.
// Owner and id are immutable.
func (s *commissionServiceImpl) Update(ctx context.Context, ownerID, id string, in CommissionInput) (*model.Commission, error) {
	commission, err := s.commissionRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find commission", "commission", err)
	}

	if in.ProgramName != nil {
		if commission.ProgramName, err = parseProgramName(*in.ProgramName); err != nil {
			return nil, err
		}
	}
	if in.Amount != nil {
		if commission.Amount, err = parseAmount(*in.Amount); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if commission.Status, err = parseStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.ExpectedDate != nil {
		if commission.ExpectedDate, err = parseDate("expected_date", *in.ExpectedDate); err != nil {
			return nil, err
		}
	}
	if in.PaidDate != nil {
		if commission.PaidDate, err = parseDate("paid_date", *in.PaidDate); err != nil {
			return nil, err
		}
	}
	if in.PromoLinkID != nil {
		commission.PromoLinkID = *in.PromoLinkID
	}
	if in.Notes != nil {
		commission.Notes = *in.Notes
	}

	if err := s.commissionRepo.Replace(ctx, commission); err != nil {
		return nil, storeErr("replace commission", "commission", err)
	}

	return commission, nil
}

func (s *commissionServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.commissionRepo.Remove(ctx, ownerID, id); err != nil {
		return storeErr("remove commission", "commission", err)
	}

	return nil
}

func (s *commissionServiceImpl) Summarize(ctx context.Context, ownerID string) (*CommissionSummary, error) {
	commissions, err := s.commissionRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list commissions", err)
	}

	summary := &CommissionSummary{}
	for _, c := range commissions {
		switch c.Status {
		case model.CommissionStatusPaid:
			summary.TotalPaid = summary.TotalPaid.Add(c.Amount)
		case model.CommissionStatusUnpaid:
			summary.TotalUnpaid = summary.TotalUnpaid.Add(c.Amount)
		case model.CommissionStatusPending:
			summary.TotalPending = summary.TotalPending.Add(c.Amount)
		}
	}

	return summary, nil
}

// ExportCSV writes the caller's entries as RFC 4180 CSV (LF line endings),
// one row per entry, amounts with exactly two decimals, dates as ISO 8601
// or empty.
func (s *commissionServiceImpl) ExportCSV(ctx context.Context, ownerID string, w io.Writer) error {
	commissions, err := s.commissionRepo.List(ctx, ownerID)
	if err != nil {
		return apperr.Store("list commissions", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range commissions {
		if err := writer.Write(exportRecord(c)); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}

func (s *commissionServiceImpl) ExportXLSX(ctx context.Context, ownerID string) (*excelize.File, error) {
	commissions, err := s.commissionRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list commissions", err)
	}

	f := excelize.NewFile()
	const sheet = "Commissions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(csvHeader))
	for i, col := range csvHeader {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, c := range commissions {
		record := exportRecord(c)
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func exportRecord(c *model.Commission) []string {
	return []string{
		c.ProgramName,
		c.Amount.StringFixed(2),
		c.Status,
		formatDate(c.ExpectedDate),
		formatDate(c.PaidDate),
		c.PromoLinkID,
		c.Notes,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func parseProgramName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", apperr.Validation("program_name", "must not be empty")
	}
	return name, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, apperr.Validation("amount", "must be a number")
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, apperr.Validation("amount", "must not be negative")
	}
	return amount, nil
}

func parseStatus(s string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(s))
	if !model.ValidCommissionStatus(status) {
		return "", apperr.Validation("status", "must be one of pending, paid, unpaid")
	}
	return status, nil
}

// parseDate accepts YYYY-MM-DD; an empty string clears the date.
func parseDate(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil, apperr.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
