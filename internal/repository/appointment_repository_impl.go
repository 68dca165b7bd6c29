package repository

import (
	"errors"
	"fmt"
	"time"

	"clinic-ops-backend/internal/domain/entity"
	domainRepo "clinic-ops-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Professional", "AppointmentType", "Procedure").Save(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Professional.User").Preload("AppointmentType").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Professional.User").Preload("AppointmentType").
		Where("clinic_id = ? AND id = ?", clinicID, id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindForProfessionalOnDay(db *gorm.DB, professionalID uuid.UUID, day time.Time) ([]entity.Appointment, error) {
	dayStart, dayEnd := entity.DayBounds(day)

	var appointments []entity.Appointment
	err := db.Where("professional_id = ? AND date >= ? AND date < ? AND status != ?",
		professionalID, dayStart, dayEnd, entity.AppointmentStatusCanceled).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByProcedure(db *gorm.DB, procedureID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("treatment_plan_procedure_id = ? AND status != ?",
		procedureID, entity.AppointmentStatusCanceled).
		Order("date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountCompletedByProcedure(db *gorm.DB, procedureID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("treatment_plan_procedure_id = ? AND status = ?",
			procedureID, entity.AppointmentStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("clinic_id = ?", clinicID)

	if filter != nil {
		if filter.ProfessionalID != uuid.Nil {
			query = query.Where("professional_id = ?", filter.ProfessionalID)
		}
		if filter.PatientID != uuid.Nil {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.StartAt != "" {
			query = query.Where("date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("date <= ?", filter.EndAt)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Patient").Preload("Professional.User").Preload("AppointmentType").
		Order("date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// LockProfessionalDay serializes all check-then-write scheduling sequences for
// one professional/day pair. Without it, two concurrent requests can both pass
// the overlap count before either inserts. The lock is released on commit or
// rollback of the surrounding transaction.
func (r *appointmentRepository) LockProfessionalDay(db *gorm.DB, professionalID uuid.UUID, day time.Time) error {
	key := fmt.Sprintf("appointment:%s:%s", professionalID, day.Format("2006-01-02"))
	return db.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error
}

func (r *appointmentRepository) LockProcedure(db *gorm.DB, procedureID uuid.UUID) error {
	key := fmt.Sprintf("procedure:%s", procedureID)
	return db.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error
}
