package converter

import (
	"testing"
	"time"

	"meditrack/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorToResponse(t *testing.T) {
	resp := DoctorToResponse(&entity.Doctor{
		ID:              "D1",
		Name:            "Dr. Smith",
		Age:             45,
		Phone:           "1234567890",
		Specialization:  entity.SpecializationGeneralPhysician,
		ConsultationFee: decimal.NewFromInt(500),
	})

	require.NotNil(t, resp)
	assert.Equal(t, "GENERAL_PHYSICIAN", resp.Specialization)
	assert.Equal(t, "500.00", resp.ConsultationFee)
	assert.Nil(t, DoctorToResponse(nil))
}

func TestAppointmentToResponse_MissingReferences(t *testing.T) {
	appointment := &entity.Appointment{
		ID:        "A1",
		PatientID: "P1",
		DoctorID:  "D9",
		DateTime:  time.Date(2025, 5, 1, 10, 15, 0, 0, time.Local),
		Status:    entity.AppointmentStatusConfirmed,
	}

	resp := AppointmentToResponse(appointment, &entity.Patient{ID: "P1", Name: "John Doe"}, nil)

	require.NotNil(t, resp)
	assert.Equal(t, "John Doe", resp.PatientName)
	assert.Equal(t, "N/A", resp.DoctorName)
	assert.Equal(t, "2025-05-01 10:15", resp.DateTime)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestBillToResponse(t *testing.T) {
	bill := entity.NewDiscountedBill("B2", &entity.Appointment{ID: "A1"}, decimal.NewFromInt(500), decimal.RequireFromString("0.10"))

	resp := BillToResponse(bill)

	require.NotNil(t, resp)
	assert.Equal(t, "500.00", resp.BaseAmount)
	assert.Equal(t, "531.00", resp.TotalAmount)
	assert.Equal(t, "531.00", BillSummaryToResponse(bill.ToSummary()).TotalAmount)
}

func TestAppointmentCountsToResponses(t *testing.T) {
	counts := map[string]int{"D1": 1, "D2": 3, "D3": 1}
	doctors := map[string]*entity.Doctor{
		"D1": {ID: "D1", Name: "Dr. One"},
		"D2": {ID: "D2", Name: "Dr. Two"},
	}

	rows := AppointmentCountsToResponses(counts, doctors)

	require.Len(t, rows, 3)
	assert.Equal(t, "D2", rows[0].DoctorID)
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, "Dr. One", rows[1].DoctorName)
	assert.Equal(t, "N/A", rows[2].DoctorName)
}
