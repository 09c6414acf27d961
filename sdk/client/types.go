// Package client provides a Go SDK for the subkeeper HTTP API.
package client

import "time"

// Subscription statuses accepted by UpdateSubscription and ListSubscriptionsByStatus.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// User is the public view of an account.
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Plan is a catalog entry. Price is a decimal rendered as a JSON number.
type Plan struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	DurationDays int            `json:"duration_days"`
	Features     map[string]any `json:"features"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Subscription is a user's subscription to a plan.
type Subscription struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PlanID    uint      `json:"plan_id"`
	Plan      *Plan     `json:"plan,omitempty"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HistoryEntry is one row of a subscription's change ledger.
type HistoryEntry struct {
	ID             uint          `json:"id"`
	SubscriptionID uint          `json:"subscription_id"`
	UserID         uint          `json:"user_id"`
	OldPlanID      *uint         `json:"old_plan_id"`
	NewPlanID      *uint         `json:"new_plan_id"`
	OldPlan        *Plan         `json:"old_plan"`
	NewPlan        *Plan         `json:"new_plan"`
	OldStatus      *string       `json:"old_status"`
	NewStatus      *string       `json:"new_status"`
	ChangeType     string        `json:"change_type"`
	ChangedAt      time.Time     `json:"changed_at"`
	Subscription   *Subscription `json:"subscription,omitempty"`
}

// PlanInput creates a plan. Price is sent as a decimal string to keep precision.
type PlanInput struct {
	Name         string         `json:"name"`
	Price        string         `json:"price"`
	DurationDays int            `json:"duration_days"`
	Features     map[string]any `json:"features,omitempty"`
}

// PlanUpdate patches a plan; nil fields are left unchanged.
type PlanUpdate struct {
	Name         *string         `json:"name,omitempty"`
	Price        *string         `json:"price,omitempty"`
	DurationDays *int            `json:"duration_days,omitempty"`
	Features     *map[string]any `json:"features,omitempty"`
}

// SubscriptionUpdate changes status and/or plan. Version enables the
// optimistic concurrency check.
type SubscriptionUpdate struct {
	Status  *string `json:"status,omitempty"`
	PlanID  *uint   `json:"plan_id,omitempty"`
	Version *int    `json:"version,omitempty"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Error   *apiError `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
