package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateClinicSettingsRequest struct {
	AllowParallelAppointments *bool `json:"allow_parallel_appointments,omitempty"`
	ParallelAppointmentsLimit *int  `json:"parallel_appointments_limit,omitempty" validate:"omitempty,min=1,max=20"`
}

// Response DTOs

type ClinicResponse struct {
	ID                        uuid.UUID `json:"id"`
	Name                      string    `json:"name"`
	AllowParallelAppointments bool      `json:"allow_parallel_appointments"`
	ParallelAppointmentsLimit int       `json:"parallel_appointments_limit"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}
