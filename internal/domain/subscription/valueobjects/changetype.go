package valueobjects

import "fmt"

// ChangeType tags a history entry with the kind of lifecycle transition it records.
type ChangeType string

const (
	ChangeTypeCreate       ChangeType = "create"
	ChangeTypeUpgrade      ChangeType = "upgrade"
	ChangeTypeDowngrade    ChangeType = "downgrade"
	ChangeTypeCancel       ChangeType = "cancel"
	ChangeTypeStatusChange ChangeType = "status_change"
)

var validChangeTypes = map[ChangeType]bool{
	ChangeTypeCreate:       true,
	ChangeTypeUpgrade:      true,
	ChangeTypeDowngrade:    true,
	ChangeTypeCancel:       true,
	ChangeTypeStatusChange: true,
}

func (c ChangeType) String() string {
	return string(c)
}

func (c ChangeType) IsValid() bool {
	return validChangeTypes[c]
}

func ParseChangeType(s string) (ChangeType, error) {
	ct := ChangeType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid change type %q", s)
	}
	return ct, nil
}

// ChangeTypeForStatus classifies a status transition: moving to cancelled is a
// cancel, anything else is a plain status change.
func ChangeTypeForStatus(newStatus SubscriptionStatus) ChangeType {
	if newStatus == StatusCancelled {
		return ChangeTypeCancel
	}
	return ChangeTypeStatusChange
}
