package repository

import (
	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentTypeRepository interface {
	Create(db *gorm.DB, appointmentType *entity.AppointmentType) error
	Update(db *gorm.DB, appointmentType *entity.AppointmentType) error
	Delete(db *gorm.DB, clinicID, id uuid.UUID) (int64, error)
	FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.AppointmentType, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.AppointmentType, error)
}
