package entity

import "github.com/shopspring/decimal"

// Bill is the transient charge for one appointment. BaseAmount is the
// doctor's fee at the moment the bill was created.
type Bill struct {
	ID            string
	AppointmentID string
	BaseAmount    decimal.Decimal
	Strategy      BillingStrategy
}

// BillSummary is the display form of a bill
type BillSummary struct {
	BillID      string
	TotalAmount decimal.Decimal
}

// NewStandardBill creates a bill taxed at TaxRate
func NewStandardBill(id string, appointment *Appointment, baseAmount decimal.Decimal) *Bill {
	return &Bill{
		ID:            id,
		AppointmentID: appointment.ID,
		BaseAmount:    baseAmount,
		Strategy:      StandardBillingStrategy{},
	}
}

// NewDiscountedBill creates a bill that applies discountRate before tax
func NewDiscountedBill(id string, appointment *Appointment, baseAmount, discountRate decimal.Decimal) *Bill {
	return &Bill{
		ID:            id,
		AppointmentID: appointment.ID,
		BaseAmount:    baseAmount,
		Strategy:      DiscountBillingStrategy{DiscountRate: discountRate},
	}
}

func (b *Bill) CalculateTotalAmount() decimal.Decimal {
	return b.Strategy.CalculateTotal(b.BaseAmount)
}

func (b *Bill) ToSummary() BillSummary {
	return BillSummary{
		BillID:      b.ID,
		TotalAmount: b.CalculateTotalAmount(),
	}
}
