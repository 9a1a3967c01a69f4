package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string `gorm:"primaryKey;size:64;not null"` // uuid
	FullName     string `gorm:"size:128;not null"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:32;not null"` // user, admin
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

type PasswordReset struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index;not null"`
	Token     string `gorm:"size:128;uniqueIndex;not null"`
	ExpiresAt time.Time
	Used      bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}

type Contact struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	UserID    string `gorm:"size:64;index;not null"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"size:128"`
	Platform  string `gorm:"size:64"`
	Notes     string `gorm:"size:1024"`
	CreatedAt time.Time
}

// Task statuses
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatus reports whether s is one of the three task statuses.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string `gorm:"primaryKey;size:64;not null"`
	UserID      string `gorm:"size:64;index;not null"`
	ContactID   string `gorm:"size:64;index"` // loose reference, no FK
	Title       string `gorm:"size:256;not null"`
	Description string `gorm:"size:1024"`
	Status      string `gorm:"size:32;index;not null"` // pending, in_progress, done
	DueDate     *time.Time
	CreatedAt   time.Time
}

type PromoLink struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	UserID       string `gorm:"size:64;index;not null"`
	OfferName    string `gorm:"size:128;not null"`
	PromoLink    string `gorm:"size:512;not null"`
	TrackingLink string `gorm:"size:512"`
	CreatedAt    time.Time
}

// Commission statuses
const (
	CommissionStatusPending = "pending"
	CommissionStatusPaid    = "paid"
	CommissionStatusUnpaid  = "unpaid"
)

// ValidCommissionStatus reports whether s is one of the three commission
// statuses.
func ValidCommissionStatus(s string) bool {
	switch s {
	case CommissionStatusPending, CommissionStatusPaid, CommissionStatusUnpaid:
		return true
	}
	return false
}

// Commission is one earned or expected commission payment. Status and the
// two dates are independently editable: an entry may be marked paid with no
// paid date, or carry a paid date while still pending.
type Commission struct {
	ID           string          `gorm:"primaryKey;size:64;not null"`
	UserID       string          `gorm:"size:64;index;not null"`
	ProgramName  string          `gorm:"size:128;not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Status       string          `gorm:"size:16;index;not null"` // pending, paid, unpaid
	ExpectedDate *time.Time      // calendar date, no time component
	PaidDate     *time.Time
	PromoLinkID  string `gorm:"size:64"` // loose reference, no FK
	Notes        string `gorm:"size:1024"`
	CreatedAt    time.Time
}
