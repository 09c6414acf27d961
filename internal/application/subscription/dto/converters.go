package dto

import (
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
)

func ToPlanDTO(plan *subscription.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}

	return &PlanDTO{
		ID:           plan.ID(),
		Name:         plan.Name(),
		Price:        plan.Price().InexactFloat64(),
		DurationDays: plan.DurationDays(),
		Features:     plan.Features(),
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}
}

// ToPlanDTOList returns an empty slice, never nil, so responses render [] instead of null.
func ToPlanDTOList(plans []*subscription.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		if plan != nil {
			dtos = append(dtos, ToPlanDTO(plan))
		}
	}
	return dtos
}

// ToSubscriptionDTO embeds plan when it is non-nil; callers pass nil for a deleted plan.
func ToSubscriptionDTO(sub *subscription.Subscription, plan *subscription.Plan) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:        sub.ID(),
		UserID:    sub.UserID(),
		PlanID:    sub.PlanID(),
		Plan:      ToPlanDTO(plan),
		Status:    sub.Status().String(),
		IsActive:  sub.IsActive(),
		StartDate: sub.StartDate(),
		EndDate:   sub.EndDate(),
		Version:   sub.Version(),
		CreatedAt: sub.CreatedAt(),
		UpdatedAt: sub.UpdatedAt(),
	}
}

func ToSubscriptionDTOList(subs []*subscription.Subscription, plans map[uint]*subscription.Plan) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		dtos = append(dtos, ToSubscriptionDTO(sub, plans[sub.PlanID()]))
	}
	return dtos
}

// ToHistoryEntryDTO resolves plan references from plans; parent may be nil.
func ToHistoryEntryDTO(entry *subscription.HistoryEntry, plans map[uint]*subscription.Plan, parent *SubscriptionDTO) *HistoryEntryDTO {
	if entry == nil {
		return nil
	}

	return &HistoryEntryDTO{
		ID:             entry.ID(),
		SubscriptionID: entry.SubscriptionID(),
		UserID:         entry.UserID(),
		OldPlanID:      entry.OldPlanID(),
		NewPlanID:      entry.NewPlanID(),
		OldPlan:        resolvePlan(entry.OldPlanID(), plans),
		NewPlan:        resolvePlan(entry.NewPlanID(), plans),
		OldStatus:      statusString(entry.OldStatus()),
		NewStatus:      statusString(entry.NewStatus()),
		ChangeType:     entry.ChangeType().String(),
		ChangedAt:      entry.ChangedAt(),
		Subscription:   parent,
	}
}

func ToHistoryEntryDTOList(entries []*subscription.HistoryEntry, plans map[uint]*subscription.Plan, parent *SubscriptionDTO) []*HistoryEntryDTO {
	dtos := make([]*HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, ToHistoryEntryDTO(entry, plans, parent))
	}
	return dtos
}

func resolvePlan(id *uint, plans map[uint]*subscription.Plan) *PlanDTO {
	if id == nil {
		return nil
	}
	return ToPlanDTO(plans[*id])
}

func statusString(status *vo.SubscriptionStatus) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}
