package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"connectvault/internal/model"

	"gorm.io/gorm"
)

// In-memory repository fakes. Each one honors the same contract as the GORM
// implementation: owner-scoped lookups, gorm.ErrRecordNotFound for missing
// or foreign rows, and copies on read so callers never alias stored state.
// Setting failWith makes every call fail, to exercise store-error paths.

type fakeCommissionRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.Commission
	failWith error
}

func newFakeCommissionRepo() *fakeCommissionRepo {
	return &fakeCommissionRepo{rows: make(map[string]*model.Commission)}
}

func (f *fakeCommissionRepo) Insert(_ context.Context, c *model.Commission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCommissionRepo) Find(_ context.Context, userID, id string) (*model.Commission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeCommissionRepo) List(_ context.Context, userID string) ([]*model.Commission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Commission
	for _, row := range f.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommissionRepo) Replace(_ context.Context, c *model.Commission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[c.ID]
	if !ok || row.UserID != c.UserID {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	cp.CreatedAt = row.CreatedAt
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCommissionRepo) Remove(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.Contact
	failWith error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{rows: make(map[string]*model.Contact)}
}

func (f *fakeContactRepo) Insert(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) Find(_ context.Context, userID, id string) (*model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeContactRepo) List(_ context.Context, userID string) ([]*model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Contact
	for _, row := range f.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContactRepo) Replace(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[c.ID]
	if !ok || row.UserID != c.UserID {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) Remove(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeContactRepo) Count(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, row := range f.rows {
		if row.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeTaskRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.Task
	failWith error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{rows: make(map[string]*model.Task)}
}

func (f *fakeTaskRepo) Insert(_ context.Context, t *model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := *t
	f.rows[t.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) Find(_ context.Context, userID, id string) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeTaskRepo) List(_ context.Context, userID string) ([]*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Task
	for _, row := range f.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTaskRepo) Replace(_ context.Context, t *model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[t.ID]
	if !ok || row.UserID != t.UserID {
		return gorm.ErrRecordNotFound
	}
	cp := *t
	f.rows[t.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) Remove(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeTaskRepo) CountDueToday(_ context.Context, userID string, day time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	end := day.Add(24 * time.Hour)
	var count int64
	for _, row := range f.rows {
		if row.UserID != userID || row.DueDate == nil || row.Status == model.TaskStatusDone {
			continue
		}
		if !row.DueDate.Before(day) && row.DueDate.Before(end) {
			count++
		}
	}
	return count, nil
}

type fakePromoLinkRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.PromoLink
	failWith error
}

func newFakePromoLinkRepo() *fakePromoLinkRepo {
	return &fakePromoLinkRepo{rows: make(map[string]*model.PromoLink)}
}

func (f *fakePromoLinkRepo) Insert(_ context.Context, l *model.PromoLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := *l
	f.rows[l.ID] = &cp
	return nil
}

func (f *fakePromoLinkRepo) Find(_ context.Context, userID, id string) (*model.PromoLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakePromoLinkRepo) List(_ context.Context, userID string) ([]*model.PromoLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.PromoLink
	for _, row := range f.rows {
		if row.UserID == userID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePromoLinkRepo) Replace(_ context.Context, l *model.PromoLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[l.ID]
	if !ok || row.UserID != l.UserID {
		return gorm.ErrRecordNotFound
	}
	cp := *l
	f.rows[l.ID] = &cp
	return nil
}

func (f *fakePromoLinkRepo) Remove(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePromoLinkRepo) Count(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, row := range f.rows {
		if row.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.User
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, row := range f.rows {
		if row.Username == username {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, row := range f.rows {
		if row.Username == identifier || row.Email == identifier {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, row := range f.rows {
		if row.Username == username || row.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	row, ok := f.rows[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.PasswordHash = passwordHash
	return nil
}

type fakePasswordResetRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*model.PasswordReset
}

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{rows: make(map[uint]*model.PasswordReset)}
}

func (f *fakePasswordResetRepo) Insert(_ context.Context, r *model.PasswordReset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakePasswordResetRepo) FindValid(_ context.Context, token string, now time.Time) (*model.PasswordReset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Token == token && !row.Used && row.ExpiresAt.After(now) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePasswordResetRepo) MarkUsed(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Used = true
	return nil
}
