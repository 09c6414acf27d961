package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
)

func TestHistoryRepository_AppendAndList(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	subRepo := NewSubscriptionRepository(db, testLogger())
	repo := NewHistoryRepository(db, testLogger())
	ctx := t.Context()

	plan := createTestPlan(t, planRepo, "Basic", "10", 30)
	sub := createTestSubscription(t, subRepo, 1, plan, testStart)
	other := createTestSubscription(t, subRepo, 2, plan, testStart)

	planID := plan.ID()
	active := vo.StatusActive
	cancelled := vo.StatusCancelled

	created, err := subscription.NewHistoryEntry(sub, vo.ChangeTypeCreate, subscription.HistoryChange{
		NewPlanID: &planID,
		NewStatus: &active,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, created))
	assert.NotZero(t, created.ID())

	cancel, err := subscription.NewHistoryEntry(sub, vo.ChangeTypeCancel, subscription.HistoryChange{
		OldStatus: &active,
		NewStatus: &cancelled,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cancel))

	foreign, err := subscription.NewHistoryEntry(other, vo.ChangeTypeCreate, subscription.HistoryChange{NewPlanID: &planID})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, foreign))

	entries, err := repo.ListBySubscriptionID(ctx, sub.ID())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, vo.ChangeTypeCancel, entries[0].ChangeType())
	assert.Nil(t, entries[0].OldPlanID())
	require.NotNil(t, entries[0].NewStatus())
	assert.Equal(t, vo.StatusCancelled, *entries[0].NewStatus())
	assert.Equal(t, vo.ChangeTypeCreate, entries[1].ChangeType())
	require.NotNil(t, entries[1].NewPlanID())
	assert.Equal(t, planID, *entries[1].NewPlanID())
	assert.Nil(t, entries[1].OldStatus())

	byUser, err := repo.ListByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, other.ID(), byUser[0].SubscriptionID())

	empty, err := repo.ListBySubscriptionID(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHistoryRepository_KeepsRowsOfDeletedPlans(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	subRepo := NewSubscriptionRepository(db, testLogger())
	repo := NewHistoryRepository(db, testLogger())
	ctx := t.Context()

	plan := createTestPlan(t, planRepo, "Legacy", "5", 10)
	sub := createTestSubscription(t, subRepo, 1, plan, testStart)
	planID := plan.ID()

	entry, err := subscription.NewHistoryEntry(sub, vo.ChangeTypeCreate, subscription.HistoryChange{NewPlanID: &planID})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, planRepo.Delete(ctx, planID))

	entries, err := repo.ListBySubscriptionID(ctx, sub.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].NewPlanID())
	assert.Equal(t, planID, *entries[0].NewPlanID())
}
