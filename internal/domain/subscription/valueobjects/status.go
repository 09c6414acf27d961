package valueobjects

import "fmt"

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

// ValidStatuses is the closed set of subscription statuses.
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
}

// AllStatuses lists the statuses in a stable order for messages.
var AllStatuses = []SubscriptionStatus{StatusActive, StatusCancelled, StatusExpired}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// ParseSubscriptionStatus rejects anything outside the closed set.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid subscription status %q, must be one of %v", s, AllStatuses)
	}
	return status, nil
}
