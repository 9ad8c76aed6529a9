package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan is a fixed-duration rental tier, expressed in days
type Plan int

const (
	PlanSevenDays     Plan = 7
	PlanFifteenDays   Plan = 15
	PlanThirtyDays    Plan = 30
	PlanFortyFiveDays Plan = 45
	PlanFiftyDays     Plan = 50
)

// Rate holds the pricing facts attached to a plan
type Rate struct {
	Plan         Plan
	DailyRate    decimal.Decimal
	DurationDays int
	FinePercent  decimal.Decimal // fraction of the unused amount charged on early return
}

// pricingTable is the only source of plan pricing. Values are never mutated.
var pricingTable = map[Plan]Rate{
	PlanSevenDays: {
		Plan:         PlanSevenDays,
		DailyRate:    decimal.RequireFromString("30.00"),
		DurationDays: 7,
		FinePercent:  decimal.RequireFromString("0.20"),
	},
	PlanFifteenDays: {
		Plan:         PlanFifteenDays,
		DailyRate:    decimal.RequireFromString("28.00"),
		DurationDays: 15,
		FinePercent:  decimal.RequireFromString("0.40"),
	},
	PlanThirtyDays: {
		Plan:         PlanThirtyDays,
		DailyRate:    decimal.RequireFromString("22.00"),
		DurationDays: 30,
		FinePercent:  decimal.Zero,
	},
	PlanFortyFiveDays: {
		Plan:         PlanFortyFiveDays,
		DailyRate:    decimal.RequireFromString("20.00"),
		DurationDays: 45,
		FinePercent:  decimal.Zero,
	},
	PlanFiftyDays: {
		Plan:         PlanFiftyDays,
		DailyRate:    decimal.RequireFromString("18.00"),
		DurationDays: 50,
		FinePercent:  decimal.Zero,
	},
}

// orderedPlans lists plans from shortest to longest
var orderedPlans = []Plan{
	PlanSevenDays,
	PlanFifteenDays,
	PlanThirtyDays,
	PlanFortyFiveDays,
	PlanFiftyDays,
}

// RateFor returns the daily rate, duration and early-return fine percentage of a plan.
// Any value outside the enumerated plans yields ErrInvalidPlan.
func RateFor(plan Plan) (Rate, error) {
	rate, ok := pricingTable[plan]
	if !ok {
		return Rate{}, fmt.Errorf("%w: %d", ErrInvalidPlan, int(plan))
	}
	return rate, nil
}

// Plans returns all plans ordered by duration
func Plans() []Plan {
	plans := make([]Plan, len(orderedPlans))
	copy(plans, orderedPlans)
	return plans
}

// Valid returns true if the plan is one of the enumerated plans
func (p Plan) Valid() bool {
	_, ok := pricingTable[p]
	return ok
}

// Days returns the plan duration in days
func (p Plan) Days() int {
	return int(p)
}

// BaseAmount returns the up-front price of the plan: daily rate times duration
func (r Rate) BaseAmount() decimal.Decimal {
	return r.DailyRate.Mul(decimal.NewFromInt(int64(r.DurationDays)))
}

// HasEarlyReturnFine returns true if returning early is penalised for this plan
func (r Rate) HasEarlyReturnFine() bool {
	return r.FinePercent.IsPositive()
}
