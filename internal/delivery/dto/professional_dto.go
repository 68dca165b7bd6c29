package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateProfessionalRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=8"`
	FullName           string   `json:"full_name" validate:"required,min=2,max=255"`
	RegistrationNumber string   `json:"registration_number,omitempty" validate:"omitempty,max=50"`
	Specialty          string   `json:"specialty,omitempty" validate:"omitempty,max=100"`
	WorkingDays        []string `json:"working_days" validate:"required,min=1,dive,weekday"`
	ScheduleStartHour  string   `json:"schedule_start_hour,omitempty" validate:"omitempty,hhmm"`
	ScheduleEndHour    string   `json:"schedule_end_hour,omitempty" validate:"omitempty,hhmm"`
}

type UpdateProfessionalRequest struct {
	RegistrationNumber *string  `json:"registration_number,omitempty" validate:"omitempty,max=50"`
	Specialty          *string  `json:"specialty,omitempty" validate:"omitempty,max=100"`
	WorkingDays        []string `json:"working_days,omitempty" validate:"omitempty,min=1,dive,weekday"`
	ScheduleStartHour  *string  `json:"schedule_start_hour,omitempty" validate:"omitempty,hhmm"`
	ScheduleEndHour    *string  `json:"schedule_end_hour,omitempty" validate:"omitempty,hhmm"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	Specialty          string    `json:"specialty,omitempty"`
	WorkingDays        []string  `json:"working_days"`
	ScheduleStartHour  string    `json:"schedule_start_hour,omitempty"`
	ScheduleEndHour    string    `json:"schedule_end_hour,omitempty"`
	IsActive           bool      `json:"is_active"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
