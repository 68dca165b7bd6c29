package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record owned by a clinic
type Patient struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"clinic_id"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic         Clinic          `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	TreatmentPlans []TreatmentPlan `gorm:"foreignKey:PatientID" json:"treatment_plans,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
