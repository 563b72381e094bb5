package dto

type BillResponse struct {
	BillID        string `json:"bill_id"`
	AppointmentID string `json:"appointment_id"`
	BaseAmount    string `json:"base_amount"`
	TotalAmount   string `json:"total_amount"`
}

type BillSummaryResponse struct {
	BillID      string `json:"bill_id"`
	TotalAmount string `json:"total_amount"`
}
