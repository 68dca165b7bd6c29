package converter

import (
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
)

// TreatmentPlanToResponse converts a TreatmentPlan entity with its procedure
// lines to a TreatmentPlanResponse DTO
func TreatmentPlanToResponse(plan *entity.TreatmentPlan) *dto.TreatmentPlanResponse {
	if plan == nil {
		return nil
	}

	procedures := make([]dto.TreatmentPlanProcedureResponse, len(plan.Procedures))
	for i := range plan.Procedures {
		p := &plan.Procedures[i]
		procedures[i] = dto.TreatmentPlanProcedureResponse{
			ID:                 p.ID,
			Name:               p.Name,
			ContractedSessions: p.ContractedSessions,
			CompletedSessions:  p.CompletedSessions,
			UnitPrice:          p.UnitPrice,
			TotalPrice:         p.TotalPrice(),
		}
	}

	return &dto.TreatmentPlanResponse{
		ID:         plan.ID,
		PatientID:  plan.PatientID,
		Title:      plan.Title,
		Procedures: procedures,
		CreatedAt:  plan.CreatedAt,
		UpdatedAt:  plan.UpdatedAt,
	}
}

// TreatmentPlansToResponses converts a slice of TreatmentPlan entities to response DTOs
func TreatmentPlansToResponses(plans []entity.TreatmentPlan) []dto.TreatmentPlanResponse {
	responses := make([]dto.TreatmentPlanResponse, len(plans))
	for i := range plans {
		resp := TreatmentPlanToResponse(&plans[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
