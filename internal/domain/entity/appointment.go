package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment.
// Status transitions are intentionally unconstrained: any status can be set
// from any other status, and derived counters are recomputed afterwards.
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusWaiting    AppointmentStatus = "WAITING"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCanceled   AppointmentStatus = "CANCELED"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusWaiting, AppointmentStatusCompleted, AppointmentStatusCanceled:
		return true
	}
	return false
}

// Appointment represents one scheduled encounter in a clinic calendar.
type Appointment struct {
	ID                       uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID                 uuid.UUID         `gorm:"type:uuid;not null;index" json:"clinic_id"`
	PatientID                uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID           uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_professional_date" json:"professional_id"`
	AppointmentTypeID        uuid.UUID         `gorm:"type:uuid;not null" json:"appointment_type_id"`
	Date                     time.Time         `gorm:"type:date;not null;index:idx_appointments_professional_date" json:"date"`
	StartTime                TimeOfDay         `gorm:"type:time;not null" json:"start_time"`
	EndTime                  TimeOfDay         `gorm:"type:time;not null" json:"end_time"`
	Status                   AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	TreatmentPlanID          *uuid.UUID        `gorm:"type:uuid;index" json:"treatment_plan_id,omitempty"`
	TreatmentPlanProcedureID *uuid.UUID        `gorm:"type:uuid;index" json:"treatment_plan_procedure_id,omitempty"`
	Notes                    string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt                time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient         Patient                 `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional    ProfessionalProfile     `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	AppointmentType AppointmentType         `gorm:"foreignKey:AppointmentTypeID" json:"appointment_type,omitempty"`
	Procedure       *TreatmentPlanProcedure `gorm:"foreignKey:TreatmentPlanProcedureID" json:"procedure,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCanceled checks if the appointment is canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == AppointmentStatusCanceled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Overlaps reports whether the appointment's half-open interval [start, end)
// intersects the candidate interval. Touching endpoints do not overlap.
func (a *Appointment) Overlaps(start, end TimeOfDay) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// LinkedToProcedure checks if the appointment consumes a treatment-plan session
func (a *Appointment) LinkedToProcedure() bool {
	return a.TreatmentPlanProcedureID != nil
}

// NormalizeDate reduces t to its calendar day, anchored at noon UTC.
// Anchoring away from midnight keeps the weekday stable when a date-only
// value crosses a timezone or DST boundary during conversion.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// WeekdayToken maps a normalized date to its uppercase weekday token,
// e.g. "MONDAY". Must be called on a NormalizeDate result.
func WeekdayToken(date time.Time) string {
	return strings.ToUpper(date.Weekday().String())
}

// DayBounds returns the [start, end) span of the full local calendar day
// containing date, for day-scoped appointment queries.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
