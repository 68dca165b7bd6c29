package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	ProfessionalID uuid.UUID // filter by professional, uuid.Nil = all
	PatientID      uuid.UUID // filter by patient, uuid.Nil = all
	StartAt        string    // Format: YYYY-MM-DD
	EndAt          string    // Format: YYYY-MM-DD
	Status         AppointmentStatus
}
