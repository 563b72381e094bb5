package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Age:             doctor.Age,
		Phone:           doctor.Phone,
		Specialization:  doctor.Specialization.String(),
		ConsultationFee: doctor.ConsultationFee.StringFixed(2),
	}
}

func FeeStatisticsToResponse(stats entity.FeeStatistics) *dto.FeeStatisticsResponse {
	return &dto.FeeStatisticsResponse{
		Count:   stats.Count,
		Min:     stats.Min.StringFixed(2),
		Max:     stats.Max.StringFixed(2),
		Average: stats.Average.StringFixed(2),
	}
}
