package service

import (
	"context"
	"log"
	"time"

	"connectvault/internal/repository"
)

// DashboardSummary is the read-only view the dashboard renders. Counts come
// from independent sources; a degraded source reports zero rather than
// failing the whole view.
type DashboardSummary struct {
	TotalContacts    int64
	TasksDueToday    int64
	ActivePromoLinks int64
	Commissions      CommissionSummary
}

type DashboardService interface {
	Summary(ctx context.Context, ownerID string) *DashboardSummary
}

type dashboardServiceImpl struct {
	contactRepo       repository.ContactRepository
	taskRepo          repository.TaskRepository
	promoLinkRepo     repository.PromoLinkRepository
	commissionService CommissionService
}

func NewDashboardService(
	contactRepo repository.ContactRepository,
	taskRepo repository.TaskRepository,
	promoLinkRepo repository.PromoLinkRepository,
	commissionService CommissionService,
) DashboardService {
	return &dashboardServiceImpl{
		contactRepo:       contactRepo,
		taskRepo:          taskRepo,
		promoLinkRepo:     promoLinkRepo,
		commissionService: commissionService,
	}
}

func (s *dashboardServiceImpl) Summary(ctx context.Context, ownerID string) *DashboardSummary {
	summary := &DashboardSummary{}

	if count, err := s.contactRepo.Count(ctx, ownerID); err != nil {
		log.Printf("dashboard: contact count unavailable: %v", err)
	} else {
		summary.TotalContacts = count
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if count, err := s.taskRepo.CountDueToday(ctx, ownerID, today); err != nil {
		log.Printf("dashboard: tasks due today unavailable: %v", err)
	} else {
		summary.TasksDueToday = count
	}

	if count, err := s.promoLinkRepo.Count(ctx, ownerID); err != nil {
		log.Printf("dashboard: promo link count unavailable: %v", err)
	} else {
		summary.ActivePromoLinks = count
	}

	if commissions, err := s.commissionService.Summarize(ctx, ownerID); err != nil {
		log.Printf("dashboard: commission summary unavailable: %v", err)
	} else {
		summary.Commissions = *commissions
	}

	return summary
}
