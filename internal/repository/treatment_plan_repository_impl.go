package repository

import (
	"errors"

	"clinic-ops-backend/internal/domain/entity"
	domainRepo "clinic-ops-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentPlanRepository struct{}

func NewTreatmentPlanRepository() domainRepo.TreatmentPlanRepository {
	return &treatmentPlanRepository{}
}

func (r *treatmentPlanRepository) Create(db *gorm.DB, plan *entity.TreatmentPlan) error {
	return db.Create(plan).Error
}

func (r *treatmentPlanRepository) FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.TreatmentPlan, error) {
	var plan entity.TreatmentPlan
	err := db.Preload("Patient").Preload("Procedures").
		Where("clinic_id = ? AND id = ?", clinicID, id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *treatmentPlanRepository) FindByPatient(db *gorm.DB, clinicID, patientID uuid.UUID) ([]entity.TreatmentPlan, error) {
	var plans []entity.TreatmentPlan
	err := db.Preload("Procedures").
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *treatmentPlanRepository) FindProcedureByID(db *gorm.DB, procedureID uuid.UUID) (*entity.TreatmentPlanProcedure, error) {
	var procedure entity.TreatmentPlanProcedure
	err := db.Where("id = ?", procedureID).First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *treatmentPlanRepository) UpdateCompletedSessions(db *gorm.DB, procedureID uuid.UUID, completed int) error {
	return db.Model(&entity.TreatmentPlanProcedure{}).
		Where("id = ?", procedureID).
		Update("completed_sessions", completed).Error
}
