package service

import (
	"strings"
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// SchedulingService holds the admissibility rules for appointments: calendar
// rules, overlap counting, the clinic concurrency policy and the
// contracted-session quota. All methods are pure — they operate on entities
// the orchestrator has already loaded inside its transaction, so the same
// rules apply identically to creates and reschedules.
type SchedulingService struct{}

func NewSchedulingService() *SchedulingService {
	return &SchedulingService{}
}

// CheckCalendar verifies that the requested day and times are admissible for
// the professional. date must be a NormalizeDate result so the weekday cannot
// roll over to an adjacent day.
func (s *SchedulingService) CheckCalendar(professional *entity.ProfessionalProfile, date time.Time, start, end entity.TimeOfDay) error {
	weekday := entity.WeekdayToken(date)
	if !professional.WorksOn(weekday) {
		return NewSchedulingError("%s does not attend on %s",
			professional.DisplayName(), strings.ToLower(weekday))
	}

	if !professional.WithinScheduleWindow(start, end) {
		return NewSchedulingError("%s only attends between %s and %s",
			professional.DisplayName(), professional.ScheduleStartHour, professional.ScheduleEndHour)
	}

	return nil
}

// CountOverlaps counts how many of the given same-day appointments intersect
// the half-open candidate interval [start, end). Canceled appointments and
// the appointment identified by excludeID (the one being rescheduled) are
// skipped. Returns a count, not a bool: the policy check needs it to compare
// against limits above one.
func (s *SchedulingService) CountOverlaps(appointments []entity.Appointment, start, end entity.TimeOfDay, excludeID uuid.UUID) int {
	count := 0
	for i := range appointments {
		a := &appointments[i]
		if a.IsCanceled() {
			continue
		}
		if excludeID != uuid.Nil && a.ID == excludeID {
			continue
		}
		if a.Overlaps(start, end) {
			count++
		}
	}
	return count
}

// CheckPolicy applies the clinic concurrency policy to an overlap count.
// The limit bounds simultaneous bookings including the candidate, so at
// exactly the limit further bookings are rejected.
func (s *SchedulingService) CheckPolicy(clinic *entity.Clinic, overlapCount int) error {
	if overlapCount < clinic.ConcurrencyLimit() {
		return nil
	}
	if !clinic.AllowParallelAppointments {
		return NewSchedulingError("this time slot is already taken")
	}
	return NewSchedulingError("the limit of %d parallel appointments for this time slot has been reached",
		clinic.ParallelAppointmentsLimit)
}

// CheckQuota enforces the contracted-session budget at creation time: the
// number of non-canceled appointments already linked to the procedure must
// stay below the contracted count. linked must contain only non-canceled
// appointments for the procedure.
func (s *SchedulingService) CheckQuota(procedure *entity.TreatmentPlanProcedure, linked []entity.Appointment) error {
	if len(linked) < procedure.ContractedSessions {
		return nil
	}

	dates := make([]string, 0, len(linked))
	for i := range linked {
		dates = append(dates, linked[i].Date.Format("2006-01-02"))
	}
	return &SessionLimitError{
		ContractedSessions: procedure.ContractedSessions,
		ScheduledDates:     dates,
	}
}

// CompletedCount recomputes the completed-session counter from scratch:
// the number of linked appointments whose status is exactly COMPLETED.
// Always a full recount, never an increment, so it stays correct under
// retries and out-of-order status changes.
func (s *SchedulingService) CompletedCount(linked []entity.Appointment) int {
	count := 0
	for i := range linked {
		if linked[i].IsCompleted() {
			count++
		}
	}
	return count
}
