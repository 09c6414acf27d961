package subscription

import "errors"

var (
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrPlanNotFound             = errors.New("subscription plan not found")
	ErrActiveSubscriptionExists = errors.New("user already has an active subscription")
	ErrVersionConflict          = errors.New("subscription was modified concurrently")
	ErrPlanNameExists           = errors.New("plan name already exists")
	ErrInvalidPlanDefinition    = errors.New("invalid plan definition")
	ErrInvalidChangeType        = errors.New("invalid change type")
	ErrHistoryImmutable         = errors.New("history record is immutable")
	ErrUserBusy                 = errors.New("subscription operation already in progress")
)
