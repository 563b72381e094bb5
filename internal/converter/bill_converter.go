package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	return &dto.BillResponse{
		BillID:        bill.ID,
		AppointmentID: bill.AppointmentID,
		BaseAmount:    bill.BaseAmount.StringFixed(2),
		TotalAmount:   bill.CalculateTotalAmount().StringFixed(2),
	}
}

func BillSummaryToResponse(summary entity.BillSummary) *dto.BillSummaryResponse {
	return &dto.BillSummaryResponse{
		BillID:      summary.BillID,
		TotalAmount: summary.TotalAmount.StringFixed(2),
	}
}
