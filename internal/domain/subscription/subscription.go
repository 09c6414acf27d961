package subscription

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
)

// Subscription represents the subscription aggregate root
type Subscription struct {
	id        uint
	userID    uint
	planID    uint
	status    vo.SubscriptionStatus
	startDate time.Time
	endDate   time.Time
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription starts an active subscription on plan at startDate; the end date
// is fixed here from the plan's duration and never recomputed afterwards.
func NewSubscription(userID uint, plan *Plan, startDate time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if plan == nil || plan.ID() == 0 {
		return nil, fmt.Errorf("plan is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:    userID,
		planID:    plan.ID(),
		status:    vo.StatusActive,
		startDate: startDate,
		endDate:   plan.EndDateFrom(startDate),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, userID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:        id,
		userID:    userID,
		planID:    planID,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// UserID returns the owning user ID
func (s *Subscription) UserID() uint {
	return s.userID
}

// PlanID returns the referenced plan ID; the plan may since have been deleted.
func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

// Version returns the aggregate version for optimistic locking
func (s *Subscription) Version() int {
	return s.version
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsActive reports whether the subscription counts towards the one-active-per-user rule.
func (s *Subscription) IsActive() bool {
	return s.status.IsActive()
}

// IsOwnedBy is the only authorization check the lifecycle engine performs.
func (s *Subscription) IsOwnedBy(userID uint) bool {
	return s.userID == userID
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// ChangeStatus sets the status and returns the previous one. Any transition
// within the closed set is allowed, including re-activation.
func (s *Subscription) ChangeStatus(status vo.SubscriptionStatus) (vo.SubscriptionStatus, error) {
	if !status.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %s", status)
	}
	old := s.status
	s.status = status
	s.touch()
	return old, nil
}

// ChangePlan swaps the referenced plan and returns the previous plan ID.
// The end date is deliberately left untouched.
func (s *Subscription) ChangePlan(plan *Plan) (uint, error) {
	if plan == nil || plan.ID() == 0 {
		return 0, fmt.Errorf("new plan is required")
	}
	old := s.planID
	s.planID = plan.ID()
	s.touch()
	return old, nil
}

// Cancel moves the subscription to cancelled; calling it on a cancelled
// subscription is a no-op in effect.
func (s *Subscription) Cancel() {
	s.status = vo.StatusCancelled
	s.touch()
}

func (s *Subscription) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}
