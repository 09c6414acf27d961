package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/orris-inc/subkeeper/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans
type PlanModel struct {
	ID           uint              `gorm:"primarykey"`
	Name         string            `gorm:"uniqueIndex:uk_subscription_plans_name;not null;size:50"`
	Price        decimal.Decimal   `gorm:"type:decimal(10,2);not null;index:idx_subscription_plans_price"`
	DurationDays int               `gorm:"not null"`
	Features     datatypes.JSONMap `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
