package dto

// Response DTOs

type AppointmentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	DateTime    string `json:"date_time"`
	Status      string `json:"status"`
}

// DoctorAppointmentCount is one row of the per-doctor analytics
type DoctorAppointmentCount struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Count      int    `json:"count"`
}
