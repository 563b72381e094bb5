package entity

import "github.com/shopspring/decimal"

// Doctor represents a clinician who can be booked for appointments
type Doctor struct {
	ID              string          `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Age             int             `gorm:"not null" json:"age"`
	Phone           string          `gorm:"type:varchar(50);not null" json:"phone"`
	Specialization  Specialization  `gorm:"type:varchar(50);not null;index" json:"specialization"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"consultation_fee"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// SameAs reports whether both doctors carry the same identity
func (d *Doctor) SameAs(other *Doctor) bool {
	return d != nil && other != nil && d.ID == other.ID
}

// Copy returns an independent copy; every field is owned by value
func (d *Doctor) Copy() *Doctor {
	c := *d
	return &c
}

// FeeStatistics summarises consultation fees across doctors
type FeeStatistics struct {
	Count   int
	Min     decimal.Decimal
	Max     decimal.Decimal
	Average decimal.Decimal
}
