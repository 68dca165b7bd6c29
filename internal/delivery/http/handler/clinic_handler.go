package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
	"clinic-ops-backend/pkg/validator"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
	}
}

func (h *ClinicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	clinic, err := h.clinicUsecase.GetSettings(r.Context(), clinicID)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		default:
			response.InternalServerError(w, "Failed to get clinic settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic settings retrieved successfully", clinic)
}

func (h *ClinicHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	var req dto.UpdateClinicSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.UpdateSettings(r.Context(), clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		default:
			response.InternalServerError(w, "Failed to update clinic settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic settings updated successfully", clinic)
}
