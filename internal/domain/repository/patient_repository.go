package repository

import (
	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.Patient, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Patient, error)
}
