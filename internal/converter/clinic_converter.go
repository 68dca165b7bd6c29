package converter

import (
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:                        clinic.ID,
		Name:                      clinic.Name,
		AllowParallelAppointments: clinic.AllowParallelAppointments,
		ParallelAppointmentsLimit: clinic.ParallelAppointmentsLimit,
		CreatedAt:                 clinic.CreatedAt,
		UpdatedAt:                 clinic.UpdatedAt,
	}
}
