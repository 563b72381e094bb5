package dto

import (
	"meditrack/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name            string                `json:"name" validate:"notblank"`
	Age             int                   `json:"age" validate:"gt=0"`
	Phone           string                `json:"phone" validate:"notblank"`
	Specialization  entity.Specialization `json:"specialization" validate:"specialization"`
	ConsultationFee decimal.Decimal       `json:"consultation_fee" validate:"gte=0"`
}

type UpdateDoctorRequest struct {
	Specialization  *entity.Specialization `json:"specialization" validate:"omitempty,specialization"`
	ConsultationFee *decimal.Decimal       `json:"consultation_fee" validate:"omitempty,gte=0"`
}

// Response DTOs

type DoctorResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	ConsultationFee string `json:"consultation_fee"`
}

type FeeStatisticsResponse struct {
	Count   int    `json:"count"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	Average string `json:"average"`
}
