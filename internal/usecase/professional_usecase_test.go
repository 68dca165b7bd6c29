package usecase

import (
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/service"
)

func TestNormalizeWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{name: "lowercase request values", input: []string{"monday", "tuesday"}, want: "MONDAY,TUESDAY"},
		{name: "already uppercase", input: []string{"FRIDAY"}, want: "FRIDAY"},
		{name: "mixed case", input: []string{"Wednesday"}, want: "WEDNESDAY"},
		{name: "empty", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWorkingDays(tt.input); got != tt.want {
				t.Errorf("normalizeWorkingDays(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// A profile built from request weekdays (validated lowercase) must pass the
// calendar check on a matching day: the stored form and the weekday tokens
// derived from dates have to agree.
func TestRequestWorkingDaysMatchCalendar(t *testing.T) {
	profile := &entity.ProfessionalProfile{
		WorkingDays: normalizeWorkingDays([]string{"monday", "tuesday"}),
	}

	svc := service.NewSchedulingService()
	monday := entity.NormalizeDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err := svc.CheckCalendar(profile, monday, "09:00", "10:00"); err != nil {
		t.Errorf("professional who works Mondays rejected on a Monday: %v", err)
	}

	sunday := entity.NormalizeDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	if err := svc.CheckCalendar(profile, sunday, "09:00", "10:00"); err == nil {
		t.Error("expected rejection on a non-working day")
	}
}
