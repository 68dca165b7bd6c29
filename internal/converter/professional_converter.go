package converter

import (
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
)

// ProfessionalToResponse converts a ProfessionalProfile entity (with its User
// preloaded) to a ProfessionalResponse DTO
func ProfessionalToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:                 profile.UserID,
		Email:              profile.User.Email,
		FullName:           profile.User.FullName,
		RegistrationNumber: profile.RegistrationNumber,
		Specialty:          profile.Specialty,
		WorkingDays:        profile.WorkingDayList(),
		ScheduleStartHour:  profile.ScheduleStartHour.String(),
		ScheduleEndHour:    profile.ScheduleEndHour.String(),
		IsActive:           profile.User.IsActive,
	}
}

// ProfessionalsToResponses converts a slice of ProfessionalProfile entities to response DTOs
func ProfessionalsToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(profiles))
	for i := range profiles {
		resp := ProfessionalToResponse(&profiles[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
