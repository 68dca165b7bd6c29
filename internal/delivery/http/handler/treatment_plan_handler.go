package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
	"clinic-ops-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TreatmentPlanHandler struct {
	planUsecase usecase.TreatmentPlanUsecase
	validator   *validator.CustomValidator
}

func NewTreatmentPlanHandler(planUsecase usecase.TreatmentPlanUsecase, validator *validator.CustomValidator) *TreatmentPlanHandler {
	return &TreatmentPlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

func (h *TreatmentPlanHandler) CreateTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	var req dto.CreateTreatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.CreateTreatmentPlan(r.Context(), clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create treatment plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment plan created successfully", plan)
}

func (h *TreatmentPlanHandler) GetTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	planID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment plan ID", nil)
		return
	}

	plan, err := h.planUsecase.GetTreatmentPlan(r.Context(), clinicID, planID)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentPlanNotFound:
			response.NotFound(w, "Treatment plan not found")
		default:
			response.InternalServerError(w, "Failed to get treatment plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan retrieved successfully", plan)
}

func (h *TreatmentPlanHandler) ListTreatmentPlansForPatient(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	plans, err := h.planUsecase.ListTreatmentPlansForPatient(r.Context(), clinicID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list treatment plans")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plans retrieved successfully", plans)
}
