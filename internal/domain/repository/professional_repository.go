package repository

import (
	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, profile *entity.ProfessionalProfile) error
	Update(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindByClinicAndUserID(db *gorm.DB, clinicID, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ProfessionalProfile, error)
}
