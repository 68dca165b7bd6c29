package converter

import (
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
)

// AppointmentTypeToResponse converts an AppointmentType entity to its response DTO
func AppointmentTypeToResponse(appointmentType *entity.AppointmentType) *dto.AppointmentTypeResponse {
	if appointmentType == nil {
		return nil
	}

	return &dto.AppointmentTypeResponse{
		ID:              appointmentType.ID,
		Name:            appointmentType.Name,
		Description:     appointmentType.Description,
		DurationMinutes: appointmentType.DurationMinutes,
		Price:           appointmentType.Price,
		CreatedAt:       appointmentType.CreatedAt,
		UpdatedAt:       appointmentType.UpdatedAt,
	}
}

// AppointmentTypesToResponses converts a slice of AppointmentType entities to response DTOs
func AppointmentTypesToResponses(types []entity.AppointmentType) []dto.AppointmentTypeResponse {
	responses := make([]dto.AppointmentTypeResponse, len(types))
	for i := range types {
		resp := AppointmentTypeToResponse(&types[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
