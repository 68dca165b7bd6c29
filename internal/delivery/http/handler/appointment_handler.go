package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/service"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
	"clinic-ops-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), clinicID, &req)
	if err != nil {
		h.writeSchedulingError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), clinicID, appointmentID, &req)
	if err != nil {
		h.writeSchedulingError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), clinicID, appointmentID, &req)
	if err != nil {
		h.writeSchedulingError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), clinicID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Clinic information not found")
		return
	}

	filter, err := appointmentFilterFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), clinicID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// writeSchedulingError maps engine errors to HTTP responses. Conflict checks,
// quota exhaustion and constraint races all surface as 409 so the front desk
// can tell a contended slot from a bad request.
func (h *AppointmentHandler) writeSchedulingError(w http.ResponseWriter, err error, fallback string) {
	var schedErr *service.SchedulingError
	var sessionErr *service.SessionLimitError

	switch {
	case errors.As(err, &sessionErr):
		response.Conflict(w, sessionErr.Error(), map[string]interface{}{
			"contracted_sessions": sessionErr.ContractedSessions,
			"scheduled_dates":     sessionErr.ScheduledDates,
		})
	case errors.As(err, &schedErr):
		response.Conflict(w, schedErr.Reason, nil)
	case errors.Is(err, entity.ErrInvalidTimeOfDay):
		response.Error(w, http.StatusBadRequest, "Time must be in HH:MM format", nil)
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrClinicNotFound):
		response.NotFound(w, "Clinic not found")
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, "Professional not found")
	case errors.Is(err, usecase.ErrProcedureNotFound):
		response.NotFound(w, "Treatment plan procedure not found")
	default:
		response.InternalServerError(w, fallback)
	}
}

func appointmentFilterFromQuery(r *http.Request) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{
		StartAt: r.URL.Query().Get("start_at"),
		EndAt:   r.URL.Query().Get("end_at"),
	}

	if raw := r.URL.Query().Get("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid professional_id")
		}
		filter.ProfessionalID = id
	}

	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid patient_id")
		}
		filter.PatientID = id
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entity.AppointmentStatus(raw)
		if !status.IsValid() {
			return nil, errors.New("invalid status")
		}
		filter.Status = status
	}

	return filter, nil
}
