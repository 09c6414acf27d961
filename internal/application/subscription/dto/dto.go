package dto

import (
	"time"
)

type PlanDTO struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Price        float64                `json:"price"`
	DurationDays int                    `json:"duration_days"`
	Features     map[string]interface{} `json:"features"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PlanID    uint      `json:"plan_id"`
	Plan      *PlanDTO  `json:"plan,omitempty"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HistoryEntryDTO is one ledger row with its plan references resolved.
// OldPlan and NewPlan are nil when the id is absent or the plan was deleted.
type HistoryEntryDTO struct {
	ID             uint             `json:"id"`
	SubscriptionID uint             `json:"subscription_id"`
	UserID         uint             `json:"user_id"`
	OldPlanID      *uint            `json:"old_plan_id"`
	NewPlanID      *uint            `json:"new_plan_id"`
	OldPlan        *PlanDTO         `json:"old_plan"`
	NewPlan        *PlanDTO         `json:"new_plan"`
	OldStatus      *string          `json:"old_status"`
	NewStatus      *string          `json:"new_status"`
	ChangeType     string           `json:"change_type"`
	ChangedAt      time.Time        `json:"changed_at"`
	Subscription   *SubscriptionDTO `json:"subscription,omitempty"`
}
