package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func createTestPlan(t *testing.T, repo subscription.PlanRepository, name, price string, days int) *subscription.Plan {
	t.Helper()

	plan, err := subscription.NewPlan(name, decimal.RequireFromString(price), days, vo.PlanFeatures{"devices": float64(3)})
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), plan))
	return plan
}

func createTestSubscription(t *testing.T, repo subscription.SubscriptionRepository, userID uint, plan *subscription.Plan, start time.Time) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(userID, plan, start)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), sub))
	return sub
}
