package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTreatmentPlanRequest struct {
	PatientID  uuid.UUID                       `json:"patient_id" validate:"required"`
	Title      string                          `json:"title" validate:"required,min=2,max=255"`
	Procedures []CreateTreatmentPlanProcedure  `json:"procedures" validate:"required,min=1,dive"`
}

type CreateTreatmentPlanProcedure struct {
	Name               string          `json:"name" validate:"required,min=2,max=255"`
	ContractedSessions int             `json:"contracted_sessions" validate:"required,min=1"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
}

// Response DTOs

type TreatmentPlanProcedureResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	ContractedSessions int             `json:"contracted_sessions"`
	CompletedSessions  int             `json:"completed_sessions"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
}

type TreatmentPlanResponse struct {
	ID         uuid.UUID                        `json:"id"`
	PatientID  uuid.UUID                        `json:"patient_id"`
	Title      string                           `json:"title"`
	Procedures []TreatmentPlanProcedureResponse `json:"procedures"`
	CreatedAt  time.Time                        `json:"created_at"`
	UpdatedAt  time.Time                        `json:"updated_at"`
}

type TreatmentPlanListResponse struct {
	TreatmentPlans []TreatmentPlanResponse `json:"treatment_plans"`
	Total          int                     `json:"total"`
}
