package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentTypeRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description,omitempty"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=5,max=480"`
	Price           decimal.Decimal `json:"price"`
}

type UpdateAppointmentTypeRequest struct {
	Name            *string          `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description     *string          `json:"description,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=480"`
	Price           *decimal.Decimal `json:"price,omitempty"`
}

// Response DTOs

type AppointmentTypeResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentTypeListResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	Total            int                       `json:"total"`
}
