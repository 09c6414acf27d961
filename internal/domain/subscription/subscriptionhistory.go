package subscription

import (
	"errors"
	"time"

	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
)

// HistoryEntry is one immutable row of the subscription audit ledger.
// It has no mutators: once built it is only ever persisted and read.
type HistoryEntry struct {
	id             uint
	subscriptionID uint
	userID         uint
	oldPlanID      *uint
	newPlanID      *uint
	oldStatus      *vo.SubscriptionStatus
	newStatus      *vo.SubscriptionStatus
	changeType     vo.ChangeType
	changedAt      time.Time
}

// HistoryChange carries the optional before/after values of one lifecycle operation.
type HistoryChange struct {
	OldPlanID *uint
	NewPlanID *uint
	OldStatus *vo.SubscriptionStatus
	NewStatus *vo.SubscriptionStatus
}

func NewHistoryEntry(sub *Subscription, changeType vo.ChangeType, change HistoryChange) (*HistoryEntry, error) {
	if sub == nil || sub.ID() == 0 {
		return nil, errors.New("history entry requires a persisted subscription")
	}
	if !changeType.IsValid() {
		return nil, ErrInvalidChangeType
	}

	return &HistoryEntry{
		subscriptionID: sub.ID(),
		userID:         sub.UserID(),
		oldPlanID:      change.OldPlanID,
		newPlanID:      change.NewPlanID,
		oldStatus:      change.OldStatus,
		newStatus:      change.NewStatus,
		changeType:     changeType,
		changedAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructHistoryEntry(
	id, subscriptionID, userID uint,
	oldPlanID, newPlanID *uint,
	oldStatus, newStatus *vo.SubscriptionStatus,
	changeType vo.ChangeType,
	changedAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, errors.New("history ID cannot be zero")
	}
	if subscriptionID == 0 {
		return nil, errors.New("subscription ID cannot be zero")
	}
	if !changeType.IsValid() {
		return nil, ErrInvalidChangeType
	}

	return &HistoryEntry{
		id:             id,
		subscriptionID: subscriptionID,
		userID:         userID,
		oldPlanID:      oldPlanID,
		newPlanID:      newPlanID,
		oldStatus:      oldStatus,
		newStatus:      newStatus,
		changeType:     changeType,
		changedAt:      changedAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) SubscriptionID() uint {
	return h.subscriptionID
}

func (h *HistoryEntry) UserID() uint {
	return h.userID
}

func (h *HistoryEntry) OldPlanID() *uint {
	return h.oldPlanID
}

func (h *HistoryEntry) NewPlanID() *uint {
	return h.newPlanID
}

func (h *HistoryEntry) OldStatus() *vo.SubscriptionStatus {
	return h.oldStatus
}

func (h *HistoryEntry) NewStatus() *vo.SubscriptionStatus {
	return h.newStatus
}

func (h *HistoryEntry) ChangeType() vo.ChangeType {
	return h.changeType
}

func (h *HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// SetID sets the entry ID (only for persistence layer use)
func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return ErrHistoryImmutable
	}
	if id == 0 {
		return errors.New("history ID cannot be zero")
	}
	h.id = id
	return nil
}

// PlanIDs returns the non-nil plan references of the entry.
func (h *HistoryEntry) PlanIDs() []uint {
	ids := make([]uint, 0, 2)
	if h.oldPlanID != nil {
		ids = append(ids, *h.oldPlanID)
	}
	if h.newPlanID != nil {
		ids = append(ids, *h.newPlanID)
	}
	return ids
}
