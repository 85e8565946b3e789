package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// BillingType says whether a product is paid once or on a schedule
type BillingType string

const (
	BillingTypeOneTime   BillingType = "ONE_TIME"
	BillingTypeRecurring BillingType = "RECURRING"
)

// RecurringInterval is the billing period of a recurring product
type RecurringInterval string

const (
	RecurringIntervalMonthly   RecurringInterval = "MONTHLY"
	RecurringIntervalQuarterly RecurringInterval = "QUARTERLY"
	RecurringIntervalYearly    RecurringInterval = "YEARLY"
)

// DepositType says how a deposit value is interpreted
type DepositType string

const (
	DepositTypeFixed      DepositType = "FIXED"
	DepositTypePercentage DepositType = "PERCENTAGE"
)

// Product is a catalog entry owned by a single user
type Product struct {
	ID                string
	OwnerID           string
	Name              string
	Description       *string
	Price             float64
	BillingType       BillingType
	RecurringInterval *RecurringInterval
	DepositEnabled    bool
	DepositType       *DepositType
	DepositValue      *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductInput is the raw, form-shaped product input.
// Numeric fields are strings so that non-numeric input can be reported.
type ProductInput struct {
	Name              string
	Description       string
	Price             string
	BillingType       string
	RecurringInterval string
	DepositEnabled    bool
	DepositType       string
	DepositValue      string
}

// ProductFields is a validated product ready to be persisted
type ProductFields struct {
	Name              string
	Description       *string
	Price             float64
	BillingType       BillingType
	RecurringInterval *RecurringInterval
	DepositEnabled    bool
	DepositType       *DepositType
	DepositValue      *float64
}

// ParseProductFields validates in and applies the billing and deposit rules:
// the recurring interval only exists for recurring products and the deposit
// only for one-time products with the deposit enabled.
func ParseProductFields(in ProductInput) (ProductFields, error) {
	var f ProductFields

	f.Name = strings.TrimSpace(in.Name)
	if f.Name == "" {
		return ProductFields{}, NewValidationError("name", "name is required")
	}

	if desc := strings.TrimSpace(in.Description); desc != "" {
		f.Description = &desc
	}

	price, ok := parseNumber(in.Price)
	if !ok {
		return ProductFields{}, NewValidationError("price", "price is required")
	}
	f.Price = price

	f.BillingType = BillingType(strings.TrimSpace(in.BillingType))
	if f.BillingType == "" {
		f.BillingType = BillingTypeOneTime
	}
	if f.BillingType != BillingTypeOneTime && f.BillingType != BillingTypeRecurring {
		return ProductFields{}, NewValidationError("billing_type", "unknown billing type %q", in.BillingType)
	}

	if f.BillingType == BillingTypeRecurring {
		interval := RecurringInterval(strings.TrimSpace(in.RecurringInterval))
		if interval == "" {
			interval = RecurringIntervalMonthly
		}
		switch interval {
		case RecurringIntervalMonthly, RecurringIntervalQuarterly, RecurringIntervalYearly:
		default:
			return ProductFields{}, NewValidationError("recurring_interval", "unknown recurring interval %q", in.RecurringInterval)
		}
		f.RecurringInterval = &interval
	}

	f.DepositEnabled = in.DepositEnabled
	if f.DepositEnabled && f.BillingType == BillingTypeOneTime {
		depositType := DepositType(strings.TrimSpace(in.DepositType))
		if depositType == "" {
			depositType = DepositTypeFixed
		}
		if depositType != DepositTypeFixed && depositType != DepositTypePercentage {
			return ProductFields{}, NewValidationError("deposit_type", "unknown deposit type %q", in.DepositType)
		}
		f.DepositType = &depositType

		if value, ok := parseNumber(in.DepositValue); ok {
			f.DepositValue = &value
		}
	}

	return f, nil
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
