package entity

import "github.com/shopspring/decimal"

// TaxRate is applied to every bill after any discount
var TaxRate = decimal.RequireFromString("0.18")

// BillingStrategy computes the payable total for a base amount
type BillingStrategy interface {
	CalculateTotal(baseAmount decimal.Decimal) decimal.Decimal
}

// StandardBillingStrategy adds tax to the base amount
type StandardBillingStrategy struct{}

func (StandardBillingStrategy) CalculateTotal(baseAmount decimal.Decimal) decimal.Decimal {
	tax := baseAmount.Mul(TaxRate)
	return baseAmount.Add(tax)
}

// DiscountBillingStrategy takes DiscountRate (0.10 = 10% off) off the base
// amount and then taxes the discounted amount. The rate is not range checked.
type DiscountBillingStrategy struct {
	DiscountRate decimal.Decimal
}

func (s DiscountBillingStrategy) CalculateTotal(baseAmount decimal.Decimal) decimal.Decimal {
	discounted := baseAmount.Mul(decimal.NewFromInt(1).Sub(s.DiscountRate))
	tax := discounted.Mul(TaxRate)
	return discounted.Add(tax)
}
