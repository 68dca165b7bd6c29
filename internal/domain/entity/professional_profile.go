package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Weekday tokens stored in ProfessionalProfile.WorkingDays
const (
	WeekdayMonday    = "MONDAY"
	WeekdayTuesday   = "TUESDAY"
	WeekdayWednesday = "WEDNESDAY"
	WeekdayThursday  = "THURSDAY"
	WeekdayFriday    = "FRIDAY"
	WeekdaySaturday  = "SATURDAY"
	WeekdaySunday    = "SUNDAY"
)

// ProfessionalProfile represents the bookable capability of a staff user:
// which weekdays they work and, optionally, the daily window they accept
// appointments in. An empty window means the whole day is bookable.
type ProfessionalProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ClinicID           uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	RegistrationNumber string    `gorm:"type:varchar(50)" json:"registration_number,omitempty"`
	Specialty          string    `gorm:"type:varchar(100);index" json:"specialty,omitempty"`
	WorkingDays        string    `gorm:"type:varchar(100);not null" json:"working_days"`
	ScheduleStartHour  TimeOfDay `gorm:"type:time" json:"schedule_start_hour,omitempty"`
	ScheduleEndHour    TimeOfDay `gorm:"type:time" json:"schedule_end_hour,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}

// WorkingDayList splits the stored comma-separated weekday tokens.
func (p *ProfessionalProfile) WorkingDayList() []string {
	if p.WorkingDays == "" {
		return nil
	}
	parts := strings.Split(p.WorkingDays, ",")
	days := make([]string, 0, len(parts))
	for _, part := range parts {
		if day := strings.TrimSpace(part); day != "" {
			days = append(days, day)
		}
	}
	return days
}

// WorksOn reports whether the given weekday token is one of the
// professional's working days.
func (p *ProfessionalProfile) WorksOn(weekday string) bool {
	for _, day := range p.WorkingDayList() {
		if day == weekday {
			return true
		}
	}
	return false
}

// HasScheduleWindow reports whether a daily working window is configured.
// Both bounds must be present; a half-configured window is treated as absent.
func (p *ProfessionalProfile) HasScheduleWindow() bool {
	return !p.ScheduleStartHour.IsZero() && !p.ScheduleEndHour.IsZero()
}

// WithinScheduleWindow reports whether [start, end] fits inside the
// configured window. Always true when no window is configured.
func (p *ProfessionalProfile) WithinScheduleWindow(start, end TimeOfDay) bool {
	if !p.HasScheduleWindow() {
		return true
	}
	return !start.Before(p.ScheduleStartHour) && !end.After(p.ScheduleEndHour)
}

// DisplayName returns the professional's name for user-facing messages.
func (p *ProfessionalProfile) DisplayName() string {
	if p.User.FullName != "" {
		return p.User.FullName
	}
	return "professional"
}
