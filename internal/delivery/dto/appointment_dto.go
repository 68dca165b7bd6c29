package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID                uuid.UUID  `json:"patient_id" validate:"required"`
	ProfessionalID           uuid.UUID  `json:"professional_id" validate:"required"`
	AppointmentTypeID        uuid.UUID  `json:"appointment_type_id" validate:"required"`
	Date                     string     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime                string     `json:"start_time" validate:"required,hhmm"`
	EndTime                  string     `json:"end_time" validate:"required,hhmm"`
	Notes                    string     `json:"notes,omitempty"`
	TreatmentPlanID          *uuid.UUID `json:"treatment_plan_id,omitempty"`
	TreatmentPlanProcedureID *uuid.UUID `json:"treatment_plan_procedure_id,omitempty"`
}

// UpdateAppointmentRequest is a partial update: empty/nil fields fall back to
// the appointment's current values.
type UpdateAppointmentRequest struct {
	PatientID         *uuid.UUID `json:"patient_id,omitempty"`
	ProfessionalID    *uuid.UUID `json:"professional_id,omitempty"`
	AppointmentTypeID *uuid.UUID `json:"appointment_type_id,omitempty"`
	Date              string     `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime         string     `json:"start_time,omitempty" validate:"omitempty,hhmm"`
	EndTime           string     `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Notes             *string    `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED IN_PROGRESS WAITING COMPLETED CANCELED"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                       uuid.UUID  `json:"id"`
	PatientID                uuid.UUID  `json:"patient_id"`
	ProfessionalID           uuid.UUID  `json:"professional_id"`
	AppointmentTypeID        uuid.UUID  `json:"appointment_type_id"`
	Date                     string     `json:"date"`
	StartTime                string     `json:"start_time"`
	EndTime                  string     `json:"end_time"`
	Status                   string     `json:"status"`
	TreatmentPlanID          *uuid.UUID `json:"treatment_plan_id,omitempty"`
	TreatmentPlanProcedureID *uuid.UUID `json:"treatment_plan_procedure_id,omitempty"`
	Notes                    string     `json:"notes,omitempty"`
	PatientName              string     `json:"patient_name,omitempty"`
	ProfessionalName         string     `json:"professional_name,omitempty"`
	AppointmentTypeName      string     `json:"appointment_type_name,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
