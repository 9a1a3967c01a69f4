package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectvault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	svc        DashboardService
	contacts   *fakeContactRepo
	tasks      *fakeTaskRepo
	promoLinks *fakePromoLinkRepo
	ledger     *fakeCommissionRepo
}

func newDashboardFixture() dashboardFixture {
	contacts := newFakeContactRepo()
	tasks := newFakeTaskRepo()
	promoLinks := newFakePromoLinkRepo()
	ledger := newFakeCommissionRepo()
	return dashboardFixture{
		svc:        NewDashboardService(contacts, tasks, promoLinks, NewCommissionService(ledger)),
		contacts:   contacts,
		tasks:      tasks,
		promoLinks: promoLinks,
		ledger:     ledger,
	}
}

func (f dashboardFixture) seed(t *testing.T, ownerID string) {
	t.Helper()
	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	require.NoError(t, f.contacts.Insert(ctx, &model.Contact{ID: "c1", UserID: ownerID, Name: "Ana"}))
	require.NoError(t, f.contacts.Insert(ctx, &model.Contact{ID: "c2", UserID: ownerID, Name: "Ben"}))
	require.NoError(t, f.contacts.Insert(ctx, &model.Contact{ID: "c3", UserID: "someone-else", Name: "Eve"}))

	require.NoError(t, f.tasks.Insert(ctx, &model.Task{ID: "t1", UserID: ownerID, Title: "call", Status: model.TaskStatusPending, DueDate: &today}))
	require.NoError(t, f.tasks.Insert(ctx, &model.Task{ID: "t2", UserID: ownerID, Title: "done already", Status: model.TaskStatusDone, DueDate: &today}))
	require.NoError(t, f.tasks.Insert(ctx, &model.Task{ID: "t3", UserID: ownerID, Title: "later", Status: model.TaskStatusPending, DueDate: &tomorrow}))

	require.NoError(t, f.promoLinks.Insert(ctx, &model.PromoLink{ID: "p1", UserID: ownerID, OfferName: "Acme", PromoLink: "https://x"}))

	ledgerSvc := NewCommissionService(f.ledger)
	_, err := ledgerSvc.Create(ctx, ownerID, CommissionInput{ProgramName: str("Acme"), Amount: str("100.00"), Status: str("paid")})
	require.NoError(t, err)
	_, err = ledgerSvc.Create(ctx, ownerID, CommissionInput{ProgramName: str("Acme"), Amount: str("50.00"), Status: str("pending")})
	require.NoError(t, err)
}

func TestDashboardSummary(t *testing.T) {
	f := newDashboardFixture()
	f.seed(t, "owner-1")

	summary := f.svc.Summary(context.Background(), "owner-1")

	assert.EqualValues(t, 2, summary.TotalContacts)
	assert.EqualValues(t, 1, summary.TasksDueToday)
	assert.EqualValues(t, 1, summary.ActivePromoLinks)
	assert.Equal(t, "100.00", summary.Commissions.TotalPaid.StringFixed(2))
	assert.Equal(t, "50.00", summary.Commissions.TotalPending.StringFixed(2))
}

func TestDashboardDegradesPerSource(t *testing.T) {
	t.Run("commission source down", func(t *testing.T) {
		f := newDashboardFixture()
		f.seed(t, "owner-1")
		f.ledger.failWith = errors.New("ledger store down")

		summary := f.svc.Summary(context.Background(), "owner-1")

		// counts survive, commissions zero out
		assert.EqualValues(t, 2, summary.TotalContacts)
		assert.EqualValues(t, 1, summary.ActivePromoLinks)
		assert.True(t, summary.Commissions.TotalPaid.IsZero())
		assert.True(t, summary.Commissions.TotalPending.IsZero())
	})

	t.Run("contact source down", func(t *testing.T) {
		f := newDashboardFixture()
		f.seed(t, "owner-1")
		f.contacts.failWith = errors.New("contact store down")

		summary := f.svc.Summary(context.Background(), "owner-1")

		assert.EqualValues(t, 0, summary.TotalContacts)
		assert.EqualValues(t, 1, summary.TasksDueToday)
		assert.Equal(t, "100.00", summary.Commissions.TotalPaid.StringFixed(2))
	})
}
