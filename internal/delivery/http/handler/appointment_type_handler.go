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

type AppointmentTypeHandler struct {
	typeUsecase usecase.AppointmentTypeUsecase
	validator   *validator.CustomValidator
}

func NewAppointmentTypeHandler(typeUsecase usecase.AppointmentTypeUsecase, validator *validator.CustomValidator) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{
		typeUsecase: typeUsecase,
		validator:   validator,
	}
}

func (h *AppointmentTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	var req dto.CreateAppointmentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointmentType, err := h.typeUsecase.Create(r.Context(), clinicID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create appointment type")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment type created successfully", appointmentType)
}

func (h *AppointmentTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	var req dto.UpdateAppointmentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointmentType, err := h.typeUsecase.Update(r.Context(), clinicID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentTypeNotFound:
			response.NotFound(w, "Appointment type not found")
		default:
			response.InternalServerError(w, "Failed to update appointment type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment type updated successfully", appointmentType)
}

func (h *AppointmentTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	if err := h.typeUsecase.Delete(r.Context(), clinicID, id); err != nil {
		switch err {
		case usecase.ErrAppointmentTypeNotFound:
			response.NotFound(w, "Appointment type not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment type deleted successfully", nil)
}

func (h *AppointmentTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type ID", nil)
		return
	}

	appointmentType, err := h.typeUsecase.GetByID(r.Context(), clinicID, id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentTypeNotFound:
			response.NotFound(w, "Appointment type not found")
		default:
			response.InternalServerError(w, "Failed to get appointment type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment type retrieved successfully", appointmentType)
}

func (h *AppointmentTypeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	appointmentTypes, err := h.typeUsecase.GetAll(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointment types")
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", appointmentTypes)
}
