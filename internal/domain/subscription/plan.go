package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
)

const (
	MaxPlanNameLength = 50
	MinDurationDays   = 1
	// MaxPriceScale and MaxPriceIntegerDigits match the DECIMAL(10,2) price column.
	MaxPriceScale         = 2
	MaxPriceIntegerDigits = 8
)

var priceUpperBound = decimal.New(1, MaxPriceIntegerDigits)

// Plan is catalog reference data: a named price for a number of days.
type Plan struct {
	id           uint
	name         string
	price        decimal.Decimal
	durationDays int
	features     vo.PlanFeatures
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(name string, price decimal.Decimal, durationDays int, features vo.PlanFeatures) (*Plan, error) {
	name = strings.TrimSpace(name)
	if err := validatePlanName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateDuration(durationDays); err != nil {
		return nil, err
	}
	if features == nil {
		features = vo.PlanFeatures{}
	}

	now := biztime.NowUTC()
	return &Plan{
		name:         name,
		price:        price,
		durationDays: durationDays,
		features:     features,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(
	id uint,
	name string,
	price decimal.Decimal,
	durationDays int,
	features vo.PlanFeatures,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if features == nil {
		features = vo.PlanFeatures{}
	}
	return &Plan{
		id:           id,
		name:         name,
		price:        price,
		durationDays: durationDays,
		features:     features,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validatePlanName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: plan name is required", ErrInvalidPlanDefinition)
	}
	if len(name) > MaxPlanNameLength {
		return fmt.Errorf("%w: plan name too long (max %d characters)", ErrInvalidPlanDefinition, MaxPlanNameLength)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidPlanDefinition)
	}
	if !price.Round(MaxPriceScale).Equal(price) {
		return fmt.Errorf("%w: price must have at most %d decimal places", ErrInvalidPlanDefinition, MaxPriceScale)
	}
	if price.GreaterThanOrEqual(priceUpperBound) {
		return fmt.Errorf("%w: price must be below %s", ErrInvalidPlanDefinition, priceUpperBound.String())
	}
	return nil
}

func validateDuration(days int) error {
	if days < MinDurationDays {
		return fmt.Errorf("%w: duration must be at least %d day", ErrInvalidPlanDefinition, MinDurationDays)
	}
	return nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) DurationDays() int {
	return p.durationDays
}

func (p *Plan) Features() vo.PlanFeatures {
	return p.features.Clone()
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsPricierThan reports whether p costs strictly more than other.
func (p *Plan) IsPricierThan(other *Plan) bool {
	if other == nil {
		return p.price.IsPositive()
	}
	return p.price.GreaterThan(other.price)
}

// EndDateFrom returns the end of a subscription period starting at start.
func (p *Plan) EndDateFrom(start time.Time) time.Time {
	return biztime.AddDays(start, p.durationDays)
}

// PlanUpdate lists the plan fields that may be patched; nil means unchanged.
type PlanUpdate struct {
	Name         *string
	Price        *decimal.Decimal
	DurationDays *int
	Features     *vo.PlanFeatures
}

func (u PlanUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.DurationDays == nil && u.Features == nil
}

// Apply validates every provided field before changing any of them.
func (p *Plan) Apply(u PlanUpdate) error {
	var name string
	if u.Name != nil {
		name = strings.TrimSpace(*u.Name)
		if err := validatePlanName(name); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	if u.DurationDays != nil {
		if err := validateDuration(*u.DurationDays); err != nil {
			return err
		}
	}

	if u.IsEmpty() {
		return nil
	}
	if u.Name != nil {
		p.name = name
	}
	if u.Price != nil {
		p.price = *u.Price
	}
	if u.DurationDays != nil {
		p.durationDays = *u.DurationDays
	}
	if u.Features != nil {
		if *u.Features == nil {
			p.features = vo.PlanFeatures{}
		} else {
			p.features = u.Features.Clone()
		}
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

// ClassifyPlanChange tags a plan swap as an upgrade when the new plan is strictly
// more expensive and as a downgrade otherwise, so equal prices count as a downgrade.
// A missing old plan is priced at zero.
func ClassifyPlanChange(oldPlan, newPlan *Plan) vo.ChangeType {
	if newPlan.IsPricierThan(oldPlan) {
		return vo.ChangeTypeUpgrade
	}
	return vo.ChangeTypeDowngrade
}
