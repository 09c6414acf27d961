package models

import (
	"time"

	"github.com/orris-inc/subkeeper/internal/shared/constants"
)

// SubscriptionHistoryModel is an append-only ledger row. Plan ids are plain
// columns without foreign keys so deleting a plan never touches history.
type SubscriptionHistoryModel struct {
	ID             uint      `gorm:"primarykey"`
	SubscriptionID uint      `gorm:"not null;index:idx_history_subscription_changed,priority:1"`
	UserID         uint      `gorm:"not null;index:idx_history_user_changed,priority:1"`
	OldPlanID      *uint
	NewPlanID      *uint
	OldStatus      *string   `gorm:"size:20"`
	NewStatus      *string   `gorm:"size:20"`
	ChangeType     string    `gorm:"not null;size:20"`
	ChangedAt      time.Time `gorm:"not null;index:idx_history_subscription_changed,priority:2;index:idx_history_user_changed,priority:2"`
}

// TableName specifies the table name for GORM
func (SubscriptionHistoryModel) TableName() string {
	return constants.TableSubscriptionHistory
}
