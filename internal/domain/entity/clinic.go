package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is the tenant root. Its concurrency policy decides how many
// appointments a professional may hold in overlapping time windows.
type Clinic struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                      string    `gorm:"type:varchar(255);not null" json:"name"`
	AllowParallelAppointments bool      `gorm:"not null;default:false" json:"allow_parallel_appointments"`
	ParallelAppointmentsLimit int       `gorm:"not null;default:1" json:"parallel_appointments_limit"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// ConcurrencyLimit returns the number of simultaneous appointments the clinic
// tolerates for one professional: 1 when parallel booking is off, otherwise
// the configured limit.
func (c *Clinic) ConcurrencyLimit() int {
	if !c.AllowParallelAppointments {
		return 1
	}
	return c.ParallelAppointmentsLimit
}
