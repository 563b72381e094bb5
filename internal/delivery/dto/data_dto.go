package dto

// LoadReport counts what a load pass restored and what it had to skip
type LoadReport struct {
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Appointments int `json:"appointments"`
	Skipped      int `json:"skipped"`
}
