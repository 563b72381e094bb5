package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecialization(t *testing.T) {
	s, err := ParseSpecialization(" cardiologist ")
	require.NoError(t, err)
	assert.Equal(t, SpecializationCardiologist, s)

	s, err = ParseSpecialization("GENERAL_PHYSICIAN")
	require.NoError(t, err)
	assert.Equal(t, SpecializationGeneralPhysician, s)

	_, err = ParseSpecialization("SURGEON")
	assert.ErrorIs(t, err, ErrUnknownSpecialization)
}

func TestParseAppointmentStatus(t *testing.T) {
	s, err := ParseAppointmentStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, AppointmentStatusCancelled, s)

	_, err = ParseAppointmentStatus("PENDING")
	assert.ErrorIs(t, err, ErrUnknownAppointmentStatus)
}

func TestAppointment_CancelIsIdempotent(t *testing.T) {
	a := &Appointment{ID: "A1", Status: AppointmentStatusConfirmed}

	a.Cancel()
	a.Cancel()

	assert.True(t, a.IsCancelled())
	assert.False(t, a.IsConfirmed())
}

func TestEntities_EqualityByID(t *testing.T) {
	d1 := &Doctor{ID: "D1", Name: "Dr. Smith"}
	d2 := &Doctor{ID: "D1", Name: "Dr. Smith (copy)"}
	d3 := &Doctor{ID: "D2", Name: "Dr. Smith"}

	assert.True(t, d1.SameAs(d2))
	assert.False(t, d1.SameAs(d3))
	assert.False(t, d1.SameAs(nil))
}
