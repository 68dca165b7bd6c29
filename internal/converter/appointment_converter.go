package converter

import (
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                       appointment.ID,
		PatientID:                appointment.PatientID,
		ProfessionalID:           appointment.ProfessionalID,
		AppointmentTypeID:        appointment.AppointmentTypeID,
		Date:                     appointment.Date.Format("2006-01-02"),
		StartTime:                appointment.StartTime.String(),
		EndTime:                  appointment.EndTime.String(),
		Status:                   string(appointment.Status),
		TreatmentPlanID:          appointment.TreatmentPlanID,
		TreatmentPlanProcedureID: appointment.TreatmentPlanProcedureID,
		Notes:                    appointment.Notes,
		CreatedAt:                appointment.CreatedAt,
		UpdatedAt:                appointment.UpdatedAt,
	}

	if appointment.Patient.FullName != "" {
		response.PatientName = appointment.Patient.FullName
	}
	if appointment.Professional.User.FullName != "" {
		response.ProfessionalName = appointment.Professional.User.FullName
	}
	if appointment.AppointmentType.Name != "" {
		response.AppointmentTypeName = appointment.AppointmentType.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
