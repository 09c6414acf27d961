package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
)

type mockPlanRepository struct {
	CreateFunc   func(ctx context.Context, plan *subscription.Plan) error
	GetByIDFunc  func(ctx context.Context, id uint) (*subscription.Plan, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*subscription.Plan, error)
	ListFunc     func(ctx context.Context) ([]*subscription.Plan, error)
	UpdateFunc   func(ctx context.Context, plan *subscription.Plan) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*subscription.Plan, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*subscription.Plan{}, nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockSubscriptionRepository struct {
	CreateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc           func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByUserIDFunc       func(ctx context.Context, userID uint) ([]*subscription.Subscription, error)
	GetActiveByUserIDFunc func(ctx context.Context, userID uint) (*subscription.Subscription, error)
	ListByStatusFunc      func(ctx context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error)
	UpdateFunc            func(ctx context.Context, sub *subscription.Subscription, expectedVersion int) error
	CountByUserIDFunc     func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return sub.SetID(100)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetActiveByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.GetActiveByUserIDFunc != nil {
		return m.GetActiveByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByStatus(ctx context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription, expectedVersion int) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub, expectedVersion)
	}
	return nil
}

func (m *mockSubscriptionRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserIDFunc != nil {
		return m.CountByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

// mockHistoryRepository keeps created entries so tests can assert on the ledger.
type mockHistoryRepository struct {
	CreateFunc               func(ctx context.Context, entry *subscription.HistoryEntry) error
	ListBySubscriptionIDFunc func(ctx context.Context, subscriptionID uint) ([]*subscription.HistoryEntry, error)
	ListByUserIDFunc         func(ctx context.Context, userID uint) ([]*subscription.HistoryEntry, error)

	created []*subscription.HistoryEntry
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *subscription.HistoryEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.created = append(m.created, entry)
	return entry.SetID(uint(len(m.created)))
}

func (m *mockHistoryRepository) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.HistoryEntry, error) {
	if m.ListBySubscriptionIDFunc != nil {
		return m.ListBySubscriptionIDFunc(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListByUserID(ctx context.Context, userID uint) ([]*subscription.HistoryEntry, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockUserLocker struct {
	WithUserLockFunc func(ctx context.Context, userID uint, fn func(ctx context.Context) error) error
}

func (m *mockUserLocker) WithUserLock(ctx context.Context, userID uint, fn func(ctx context.Context) error) error {
	if m.WithUserLockFunc != nil {
		return m.WithUserLockFunc(ctx, userID, fn)
	}
	return fn(ctx)
}

type mockMetrics struct {
	created int
	history map[string]int
}

func (m *mockMetrics) SubscriptionCreated() {
	m.created++
}

func (m *mockMetrics) HistoryEntryRecorded(changeType string) {
	if m.history == nil {
		m.history = map[string]int{}
	}
	m.history[changeType]++
}

// --- fixtures ---

func testPlan(t *testing.T, id uint, price string, days int) *subscription.Plan {
	t.Helper()
	now := time.Now().UTC()
	plan, err := subscription.ReconstructPlan(id, "plan-"+price, decimal.RequireFromString(price), days, nil, now, now)
	require.NoError(t, err)
	return plan
}

func testSubscription(t *testing.T, id, userID, planID uint, status vo.SubscriptionStatus, version int) *subscription.Subscription {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub, err := subscription.ReconstructSubscription(id, userID, planID, status, start, start.AddDate(0, 0, 30), version, start, start)
	require.NoError(t, err)
	return sub
}

func planLookup(plans ...*subscription.Plan) func(ctx context.Context, id uint) (*subscription.Plan, error) {
	byID := make(map[uint]*subscription.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID()] = p
	}
	return func(ctx context.Context, id uint) (*subscription.Plan, error) {
		return byID[id], nil
	}
}

func planBatchLookup(plans ...*subscription.Plan) func(ctx context.Context, ids []uint) (map[uint]*subscription.Plan, error) {
	byID := make(map[uint]*subscription.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID()] = p
	}
	return func(ctx context.Context, ids []uint) (map[uint]*subscription.Plan, error) {
		out := make(map[uint]*subscription.Plan)
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				out[id] = p
			}
		}
		return out, nil
	}
}

func historyEntry(t *testing.T, id, subscriptionID, userID uint, changeType vo.ChangeType, oldPlan, newPlan *uint, changedAt time.Time) *subscription.HistoryEntry {
	t.Helper()
	entry, err := subscription.ReconstructHistoryEntry(id, subscriptionID, userID, oldPlan, newPlan, nil, nil, changeType, changedAt)
	require.NoError(t, err)
	return entry
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
