package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFields(t *testing.T) {
	monthly := RecurringIntervalMonthly
	yearly := RecurringIntervalYearly
	fixed := DepositTypeFixed
	percentage := DepositTypePercentage

	tests := []struct {
		name      string
		input     ProductInput
		expected  ProductFields
		wantField string
	}{
		{
			name:  "one time without deposit",
			input: ProductInput{Name: " Consulting ", Price: "150"},
			expected: ProductFields{
				Name:        "Consulting",
				Price:       150,
				BillingType: BillingTypeOneTime,
			},
		},
		{
			name:  "recurring defaults to monthly",
			input: ProductInput{Name: "Hosting", Price: "9.99", BillingType: "RECURRING"},
			expected: ProductFields{
				Name:              "Hosting",
				Price:             9.99,
				BillingType:       BillingTypeRecurring,
				RecurringInterval: &monthly,
			},
		},
		{
			name:  "recurring yearly ignores the deposit",
			input: ProductInput{Name: "Support", Price: "1200", BillingType: "RECURRING", RecurringInterval: "YEARLY", DepositEnabled: true, DepositType: "PERCENTAGE", DepositValue: "10"},
			expected: ProductFields{
				Name:              "Support",
				Price:             1200,
				BillingType:       BillingTypeRecurring,
				RecurringInterval: &yearly,
				DepositEnabled:    true,
			},
		},
		{
			name:  "deposit defaults to fixed",
			input: ProductInput{Name: "Website", Description: "  landing page ", Price: "2000", DepositEnabled: true, DepositValue: "500"},
			expected: ProductFields{
				Name:           "Website",
				Description:    StringPtr("landing page"),
				Price:          2000,
				BillingType:    BillingTypeOneTime,
				DepositEnabled: true,
				DepositType:    &fixed,
				DepositValue:   float64Ptr(500),
			},
		},
		{
			name:  "percentage deposit without value",
			input: ProductInput{Name: "Website", Price: "2000", DepositEnabled: true, DepositType: "PERCENTAGE", DepositValue: "abc"},
			expected: ProductFields{
				Name:           "Website",
				Price:          2000,
				BillingType:    BillingTypeOneTime,
				DepositEnabled: true,
				DepositType:    &percentage,
			},
		},
		{
			name:  "deposit disabled drops the value",
			input: ProductInput{Name: "Website", Price: "2000", DepositType: "PERCENTAGE", DepositValue: "30"},
			expected: ProductFields{
				Name:        "Website",
				Price:       2000,
				BillingType: BillingTypeOneTime,
			},
		},
		{
			name:      "blank name",
			input:     ProductInput{Name: "   ", Price: "10"},
			wantField: "name",
		},
		{
			name:      "non numeric price",
			input:     ProductInput{Name: "Consulting", Price: "ten"},
			wantField: "price",
		},
		{
			name:      "infinite price",
			input:     ProductInput{Name: "Consulting", Price: "Inf"},
			wantField: "price",
		},
		{
			name:      "unknown billing type",
			input:     ProductInput{Name: "Consulting", Price: "10", BillingType: "WEEKLY"},
			wantField: "billing_type",
		},
		{
			name:      "unknown interval",
			input:     ProductInput{Name: "Consulting", Price: "10", BillingType: "RECURRING", RecurringInterval: "DAILY"},
			wantField: "recurring_interval",
		},
		{
			name:      "unknown deposit type",
			input:     ProductInput{Name: "Consulting", Price: "10", DepositEnabled: true, DepositType: "HALF"},
			wantField: "deposit_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseProductFields(tt.input)
			if tt.wantField != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields)
		})
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
