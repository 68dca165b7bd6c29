package entity

import (
	"testing"
	"time"
)

func TestAppointmentOverlaps(t *testing.T) {
	appointment := &Appointment{StartTime: "10:00", EndTime: "11:00"}

	tests := []struct {
		name       string
		start, end TimeOfDay
		want       bool
	}{
		{name: "identical interval", start: "10:00", end: "11:00", want: true},
		{name: "candidate inside", start: "10:15", end: "10:45", want: true},
		{name: "candidate contains", start: "09:00", end: "12:00", want: true},
		{name: "partial overlap at start", start: "09:30", end: "10:30", want: true},
		{name: "partial overlap at end", start: "10:30", end: "11:30", want: true},
		{name: "back to back before", start: "09:00", end: "10:00", want: false},
		{name: "back to back after", start: "11:00", end: "12:00", want: false},
		{name: "disjoint before", start: "08:00", end: "09:00", want: false},
		{name: "disjoint after", start: "12:00", end: "13:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appointment.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name        string
		input       time.Time
		wantDay     int
		wantWeekday string
	}{
		{
			name:        "midnight utc stays on its day",
			input:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			wantDay:     10,
			wantWeekday: "MONDAY",
		},
		{
			name:        "late evening stays on its day",
			input:       time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC),
			wantDay:     10,
			wantWeekday: "MONDAY",
		},
		{
			name:        "negative offset zone keeps calendar day",
			input:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			wantDay:     10,
			wantWeekday: "MONDAY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if got.Day() != tt.wantDay {
				t.Errorf("NormalizeDate day = %d, want %d", got.Day(), tt.wantDay)
			}
			if got.Hour() != 12 {
				t.Errorf("NormalizeDate hour = %d, want 12", got.Hour())
			}
			if wk := WeekdayToken(got); wk != tt.wantWeekday {
				t.Errorf("WeekdayToken = %s, want %s", wk, tt.wantWeekday)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	date := NormalizeDate(time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC))
	start, end := DayBounds(date)

	if start.Hour() != 0 || start.Day() != 10 {
		t.Errorf("DayBounds start = %v, want midnight of day 10", start)
	}
	if !end.Equal(start.Add(24 * time.Hour)) {
		t.Errorf("DayBounds end = %v, want start+24h", end)
	}
	if !date.After(start) || !date.Before(end) {
		t.Errorf("normalized date %v not inside [%v, %v)", date, start, end)
	}
}

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{
		AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusWaiting, AppointmentStatusCompleted, AppointmentStatusCanceled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}

	for _, s := range []AppointmentStatus{"", "scheduled", "DONE", "NO_SHOW"} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}
