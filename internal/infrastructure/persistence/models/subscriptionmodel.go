package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/subkeeper/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions.
// ActiveUserID mirrors UserID while Status is active and is NULL otherwise; its
// unique index enforces at most one active subscription per user.
type SubscriptionModel struct {
	ID           uint      `gorm:"primarykey"`
	UserID       uint      `gorm:"not null;index:idx_subscriptions_user_created,priority:1"`
	PlanID       uint      `gorm:"not null;index:idx_subscriptions_plan"`
	Status       string    `gorm:"not null;size:20;index:idx_subscriptions_status"`
	ActiveUserID *uint     `gorm:"uniqueIndex:uk_subscriptions_active_user"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`
	Version      int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"index:idx_subscriptions_user_created,priority:2"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
