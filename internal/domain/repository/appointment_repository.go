package repository

import (
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByClinicAndID(db *gorm.DB, clinicID, id uuid.UUID) (*entity.Appointment, error)

	// FindForProfessionalOnDay returns all non-canceled appointments of the
	// professional whose date falls inside the full 24h span of day.
	FindForProfessionalOnDay(db *gorm.DB, professionalID uuid.UUID, day time.Time) ([]entity.Appointment, error)

	// FindActiveByProcedure returns all non-canceled appointments linked to a
	// treatment-plan procedure, ordered by date.
	FindActiveByProcedure(db *gorm.DB, procedureID uuid.UUID) ([]entity.Appointment, error)

	// CountCompletedByProcedure counts linked appointments whose status is
	// exactly COMPLETED.
	CountCompletedByProcedure(db *gorm.DB, procedureID uuid.UUID) (int64, error)

	FindByClinic(db *gorm.DB, clinicID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// LockProfessionalDay takes a transaction-scoped advisory lock that
	// serializes concurrent scheduling attempts for the same professional and
	// calendar day. Must be called inside a transaction.
	LockProfessionalDay(db *gorm.DB, professionalID uuid.UUID, day time.Time) error

	// LockProcedure does the same for session-quota checks on one
	// treatment-plan procedure.
	LockProcedure(db *gorm.DB, procedureID uuid.UUID) error
}
