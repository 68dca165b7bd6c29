package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func monday() time.Time {
	return entity.NormalizeDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
}

func sunday() time.Time {
	return entity.NormalizeDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
}

func TestCheckCalendar(t *testing.T) {
	scheduler := NewSchedulingService()

	professional := &entity.ProfessionalProfile{
		User:              entity.User{FullName: "Dr. Silva"},
		WorkingDays:       "MONDAY,WEDNESDAY,FRIDAY",
		ScheduleStartHour: "08:00",
		ScheduleEndHour:   "18:00",
	}

	tests := []struct {
		name       string
		date       time.Time
		start, end entity.TimeOfDay
		wantErr    string
	}{
		{name: "working day inside window", date: monday(), start: "09:00", end: "10:00"},
		{name: "non working day", date: sunday(), start: "09:00", end: "10:00", wantErr: "does not attend on sunday"},
		{name: "before window", date: monday(), start: "07:00", end: "08:30", wantErr: "only attends between 08:00 and 18:00"},
		{name: "after window", date: monday(), start: "17:30", end: "18:30", wantErr: "only attends between 08:00 and 18:00"},
		{name: "window boundaries inclusive", date: monday(), start: "08:00", end: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduler.CheckCalendar(professional, tt.date, tt.start, tt.end)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CheckCalendar unexpected error: %v", err)
				}
				return
			}

			var schedErr *SchedulingError
			if !errors.As(err, &schedErr) {
				t.Fatalf("CheckCalendar error = %v, want SchedulingError", err)
			}
			if !strings.Contains(schedErr.Reason, tt.wantErr) {
				t.Errorf("CheckCalendar reason = %q, want it to contain %q", schedErr.Reason, tt.wantErr)
			}
		})
	}
}

func TestCheckCalendarNoWindow(t *testing.T) {
	scheduler := NewSchedulingService()

	professional := &entity.ProfessionalProfile{WorkingDays: "MONDAY"}

	if err := scheduler.CheckCalendar(professional, monday(), "05:00", "23:00"); err != nil {
		t.Fatalf("professional without a window should accept any time, got: %v", err)
	}
}

func TestCountOverlaps(t *testing.T) {
	scheduler := NewSchedulingService()

	rescheduledID := uuid.New()
	appointments := []entity.Appointment{
		{ID: uuid.New(), StartTime: "09:00", EndTime: "10:00", Status: entity.AppointmentStatusScheduled},
		{ID: uuid.New(), StartTime: "09:30", EndTime: "10:30", Status: entity.AppointmentStatusConfirmed},
		{ID: uuid.New(), StartTime: "09:00", EndTime: "10:00", Status: entity.AppointmentStatusCanceled},
		{ID: rescheduledID, StartTime: "10:00", EndTime: "11:00", Status: entity.AppointmentStatusScheduled},
	}

	tests := []struct {
		name       string
		start, end entity.TimeOfDay
		excludeID  uuid.UUID
		want       int
	}{
		{name: "overlapping two active", start: "09:15", end: "09:45", want: 2},
		{name: "canceled never counts", start: "09:00", end: "10:00", want: 2},
		{name: "back to back does not count", start: "11:00", end: "12:00", want: 0},
		{name: "reschedule excludes itself", start: "10:00", end: "11:00", excludeID: rescheduledID, want: 1},
		{name: "free slot", start: "13:00", end: "14:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scheduler.CountOverlaps(appointments, tt.start, tt.end, tt.excludeID)
			if got != tt.want {
				t.Errorf("CountOverlaps(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCheckPolicy(t *testing.T) {
	scheduler := NewSchedulingService()

	serial := &entity.Clinic{AllowParallelAppointments: false, ParallelAppointmentsLimit: 1}
	parallel := &entity.Clinic{AllowParallelAppointments: true, ParallelAppointmentsLimit: 3}

	tests := []struct {
		name         string
		clinic       *entity.Clinic
		overlapCount int
		wantErr      bool
	}{
		{name: "serial free slot", clinic: serial, overlapCount: 0},
		{name: "serial rejects any overlap", clinic: serial, overlapCount: 1, wantErr: true},
		{name: "parallel under the limit", clinic: parallel, overlapCount: 2},
		{name: "parallel at the limit", clinic: parallel, overlapCount: 3, wantErr: true},
		{name: "parallel over the limit", clinic: parallel, overlapCount: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduler.CheckPolicy(tt.clinic, tt.overlapCount)
			if tt.wantErr && err == nil {
				t.Fatal("CheckPolicy expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("CheckPolicy unexpected error: %v", err)
			}
			if tt.wantErr {
				var schedErr *SchedulingError
				if !errors.As(err, &schedErr) {
					t.Fatalf("CheckPolicy error = %v, want SchedulingError", err)
				}
			}
		})
	}
}

func TestCheckQuota(t *testing.T) {
	scheduler := NewSchedulingService()

	procedure := &entity.TreatmentPlanProcedure{ContractedSessions: 2}

	day1 := entity.NormalizeDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	day2 := entity.NormalizeDate(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

	t.Run("below quota", func(t *testing.T) {
		linked := []entity.Appointment{{Date: day1, Status: entity.AppointmentStatusScheduled}}
		if err := scheduler.CheckQuota(procedure, linked); err != nil {
			t.Fatalf("CheckQuota unexpected error: %v", err)
		}
	})

	t.Run("quota exhausted carries the booked dates", func(t *testing.T) {
		linked := []entity.Appointment{
			{Date: day1, Status: entity.AppointmentStatusScheduled},
			{Date: day2, Status: entity.AppointmentStatusCompleted},
		}

		err := scheduler.CheckQuota(procedure, linked)
		var limitErr *SessionLimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("CheckQuota error = %v, want SessionLimitError", err)
		}
		if limitErr.ContractedSessions != 2 {
			t.Errorf("ContractedSessions = %d, want 2", limitErr.ContractedSessions)
		}
		if len(limitErr.ScheduledDates) != 2 {
			t.Fatalf("ScheduledDates = %v, want 2 entries", limitErr.ScheduledDates)
		}
		if limitErr.ScheduledDates[0] != "2025-03-10" || limitErr.ScheduledDates[1] != "2025-03-12" {
			t.Errorf("ScheduledDates = %v", limitErr.ScheduledDates)
		}
		if !strings.Contains(limitErr.Error(), "2025-03-10") {
			t.Errorf("Error() = %q, want the booked dates in the message", limitErr.Error())
		}
	})
}

func TestCompletedCount(t *testing.T) {
	scheduler := NewSchedulingService()

	linked := []entity.Appointment{
		{Status: entity.AppointmentStatusCompleted},
		{Status: entity.AppointmentStatusScheduled},
		{Status: entity.AppointmentStatusCompleted},
		{Status: entity.AppointmentStatusCanceled},
		{Status: entity.AppointmentStatusWaiting},
	}

	if got := scheduler.CompletedCount(linked); got != 2 {
		t.Errorf("CompletedCount = %d, want 2", got)
	}

	if got := scheduler.CompletedCount(nil); got != 0 {
		t.Errorf("CompletedCount(nil) = %d, want 0", got)
	}
}
