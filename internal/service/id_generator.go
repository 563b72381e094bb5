package service

import (
	"strconv"
	"sync/atomic"
)

const (
	DoctorIDPrefix      = "D"
	PatientIDPrefix     = "P"
	AppointmentIDPrefix = "A"
	BillIDPrefix        = "B"
)

// IDGenerator hands out ids of the form <prefix><counter>. Each kind has its
// own counter starting at 1. Counters live only as long as the generator and
// are not seeded from loaded data, so ids minted after a load can collide
// with loaded ones.
type IDGenerator struct {
	doctor      atomic.Int64
	patient     atomic.Int64
	appointment atomic.Int64
	bill        atomic.Int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) NextDoctorID() string {
	return DoctorIDPrefix + strconv.FormatInt(g.doctor.Add(1), 10)
}

func (g *IDGenerator) NextPatientID() string {
	return PatientIDPrefix + strconv.FormatInt(g.patient.Add(1), 10)
}

func (g *IDGenerator) NextAppointmentID() string {
	return AppointmentIDPrefix + strconv.FormatInt(g.appointment.Add(1), 10)
}

func (g *IDGenerator) NextBillID() string {
	return BillIDPrefix + strconv.FormatInt(g.bill.Add(1), 10)
}
