package repository

import (
	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentPlanRepository interface {
	Create(db *gorm.DB, plan *entity.TreatmentPlan) error
	FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.TreatmentPlan, error)
	FindByPatient(db *gorm.DB, clinicID, patientID uuid.UUID) ([]entity.TreatmentPlan, error)
	FindProcedureByID(db *gorm.DB, procedureID uuid.UUID) (*entity.TreatmentPlanProcedure, error)

	// UpdateCompletedSessions overwrites the cached completed-session counter.
	// Callers recompute the value from linked appointments; the counter is
	// never incremented in place.
	UpdateCompletedSessions(db *gorm.DB, procedureID uuid.UUID, completed int) error
}
