package converter

import (
	"sort"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/dateutil"
)

const unknownName = "N/A"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// patient and doctor may be nil when they no longer exist.
func AppointmentToResponse(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: unknownName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  unknownName,
		DateTime:    dateutil.Format(appointment.DateTime),
		Status:      string(appointment.Status),
	}

	if patient != nil {
		response.PatientName = patient.Name
	}
	if doctor != nil {
		response.DoctorName = doctor.Name
	}

	return response
}

// AppointmentCountsToResponses joins per-doctor counts with doctor names,
// busiest doctor first. Doctors missing from doctors are shown as N/A.
func AppointmentCountsToResponses(counts map[string]int, doctors map[string]*entity.Doctor) []dto.DoctorAppointmentCount {
	responses := make([]dto.DoctorAppointmentCount, 0, len(counts))
	for doctorID, count := range counts {
		name := unknownName
		if d, ok := doctors[doctorID]; ok {
			name = d.Name
		}
		responses = append(responses, dto.DoctorAppointmentCount{
			DoctorID:   doctorID,
			DoctorName: name,
			Count:      count,
		})
	}

	sort.Slice(responses, func(i, j int) bool {
		if responses[i].Count != responses[j].Count {
			return responses[i].Count > responses[j].Count
		}
		return responses[i].DoctorID < responses[j].DoctorID
	})
	return responses
}
