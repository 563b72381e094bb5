package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

var ErrUnknownAppointmentStatus = errors.New("unknown appointment status")

func (s AppointmentStatus) IsValid() bool {
	return s == AppointmentStatusConfirmed || s == AppointmentStatusCancelled
}

// ParseAppointmentStatus accepts a status name in any letter case
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	s := AppointmentStatus(strings.ToUpper(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAppointmentStatus, value)
	}
	return s, nil
}

// Appointment books a patient with a doctor. Patient and doctor are held as
// ids and resolved through their stores whenever they are needed.
type Appointment struct {
	ID        string            `gorm:"type:varchar(32);primaryKey" json:"id"`
	PatientID string            `gorm:"type:varchar(32);not null;index" json:"patient_id"`
	DoctorID  string            `gorm:"type:varchar(32);not null;index" json:"doctor_id"`
	DateTime  time.Time         `gorm:"not null" json:"date_time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// SameAs reports whether both appointments carry the same identity
func (a *Appointment) SameAs(other *Appointment) bool {
	return a != nil && other != nil && a.ID == other.ID
}

// Copy returns an independent copy; every field is owned by value
func (a *Appointment) Copy() *Appointment {
	c := *a
	return &c
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
