package repository

import (
	"errors"

	"clinic-ops-backend/internal/domain/entity"
	domainRepo "clinic-ops-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentTypeRepository struct{}

func NewAppointmentTypeRepository() domainRepo.AppointmentTypeRepository {
	return &appointmentTypeRepository{}
}

func (r *appointmentTypeRepository) Create(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Create(appointmentType).Error
}

func (r *appointmentTypeRepository) Update(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Save(appointmentType).Error
}

func (r *appointmentTypeRepository) Delete(db *gorm.DB, clinicID, id uuid.UUID) (int64, error) {
	result := db.Where("clinic_id = ? AND id = ?", clinicID, id).Delete(&entity.AppointmentType{})
	return result.RowsAffected, result.Error
}

func (r *appointmentTypeRepository) FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.AppointmentType, error) {
	var appointmentType entity.AppointmentType
	err := db.Where("clinic_id = ? AND id = ?", clinicID, id).First(&appointmentType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointmentType, nil
}

func (r *appointmentTypeRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.AppointmentType, error) {
	var types []entity.AppointmentType
	err := db.Where("clinic_id = ?", clinicID).Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
