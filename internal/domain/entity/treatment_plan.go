package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreatmentPlan groups the contracted procedure lines of one patient
type TreatmentPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    Patient                  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Procedures []TreatmentPlanProcedure `gorm:"foreignKey:TreatmentPlanID" json:"procedures,omitempty"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}

// TreatmentPlanProcedure is one budgeted line item of a treatment plan.
// ContractedSessions is the hard budget; CompletedSessions is a cache that is
// always overwritten from the count of linked COMPLETED appointments, never
// incremented in place.
type TreatmentPlanProcedure struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TreatmentPlanID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"treatment_plan_id"`
	Name               string          `gorm:"type:varchar(255);not null" json:"name"`
	ContractedSessions int             `gorm:"not null" json:"contracted_sessions"`
	CompletedSessions  int             `gorm:"not null;default:0" json:"completed_sessions"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	TreatmentPlan TreatmentPlan `gorm:"foreignKey:TreatmentPlanID" json:"treatment_plan,omitempty"`
	Appointments  []Appointment `gorm:"foreignKey:TreatmentPlanProcedureID" json:"appointments,omitempty"`
}

func (TreatmentPlanProcedure) TableName() string {
	return "treatment_plan_procedures"
}

// TotalPrice returns the contracted value of the line item
func (p *TreatmentPlanProcedure) TotalPrice() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.ContractedSessions)))
}
