package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStandardBillingStrategy_AddsTax(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"0", "0"},
		{"500", "590"},
		{"100", "118"},
		{"12.50", "14.75"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := StandardBillingStrategy{}.CalculateTotal(decimal.RequireFromString(tt.base))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDiscountBillingStrategy_DiscountPrecedesTax(t *testing.T) {
	tests := []struct {
		name string
		base string
		rate string
		want string
	}{
		{"no discount", "500", "0", "590"},
		{"ten percent", "500", "0.10", "531"},
		{"half off", "200", "0.5", "118"},
		{"zero base", "0", "0.25", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := DiscountBillingStrategy{DiscountRate: decimal.RequireFromString(tt.rate)}
			got := strategy.CalculateTotal(decimal.RequireFromString(tt.base))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDiscountBillingStrategy_RateAboveOneIsNotClamped(t *testing.T) {
	strategy := DiscountBillingStrategy{DiscountRate: decimal.RequireFromString("1.5")}

	got := strategy.CalculateTotal(decimal.NewFromInt(100))

	assert.True(t, got.IsNegative())
}

func TestBill_SummaryUsesStrategy(t *testing.T) {
	appointment := &Appointment{ID: "A1", PatientID: "P1", DoctorID: "D1", Status: AppointmentStatusConfirmed}
	fee := decimal.NewFromInt(500)

	standard := NewStandardBill("B1", appointment, fee)
	discounted := NewDiscountedBill("B2", appointment, fee, decimal.RequireFromString("0.10"))

	assert.Equal(t, "A1", standard.AppointmentID)
	assert.Equal(t, "B1", standard.ToSummary().BillID)
	assert.True(t, standard.ToSummary().TotalAmount.Equal(decimal.NewFromInt(590)))
	assert.True(t, discounted.CalculateTotalAmount().Equal(decimal.NewFromInt(531)))
}
