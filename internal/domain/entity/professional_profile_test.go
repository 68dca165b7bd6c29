package entity

import "testing"

func TestWorkingDayList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain list", raw: "MONDAY,WEDNESDAY,FRIDAY", want: []string{"MONDAY", "WEDNESDAY", "FRIDAY"}},
		{name: "spaces around tokens", raw: " MONDAY , TUESDAY ", want: []string{"MONDAY", "TUESDAY"}},
		{name: "trailing comma", raw: "MONDAY,", want: []string{"MONDAY"}},
		{name: "empty", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProfessionalProfile{WorkingDays: tt.raw}
			got := p.WorkingDayList()
			if len(got) != len(tt.want) {
				t.Fatalf("WorkingDayList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("WorkingDayList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWorksOn(t *testing.T) {
	p := &ProfessionalProfile{WorkingDays: "MONDAY,TUESDAY,THURSDAY"}

	if !p.WorksOn(WeekdayMonday) {
		t.Error("WorksOn(MONDAY) = false, want true")
	}
	if p.WorksOn(WeekdaySunday) {
		t.Error("WorksOn(SUNDAY) = true, want false")
	}
}

func TestWithinScheduleWindow(t *testing.T) {
	tests := []struct {
		name         string
		windowStart  TimeOfDay
		windowEnd    TimeOfDay
		start, end   TimeOfDay
		want         bool
	}{
		{name: "inside window", windowStart: "08:00", windowEnd: "18:00", start: "09:00", end: "10:00", want: true},
		{name: "exactly the window", windowStart: "08:00", windowEnd: "18:00", start: "08:00", end: "18:00", want: true},
		{name: "starts before window", windowStart: "08:00", windowEnd: "18:00", start: "07:30", end: "09:00", want: false},
		{name: "ends after window", windowStart: "08:00", windowEnd: "18:00", start: "17:30", end: "18:30", want: false},
		{name: "no window means whole day", start: "00:00", end: "23:59", want: true},
		{name: "half configured window ignored", windowStart: "08:00", start: "06:00", end: "07:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProfessionalProfile{
				ScheduleStartHour: tt.windowStart,
				ScheduleEndHour:   tt.windowEnd,
			}
			if got := p.WithinScheduleWindow(tt.start, tt.end); got != tt.want {
				t.Errorf("WithinScheduleWindow(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestClinicConcurrencyLimit(t *testing.T) {
	serial := &Clinic{AllowParallelAppointments: false, ParallelAppointmentsLimit: 5}
	if got := serial.ConcurrencyLimit(); got != 1 {
		t.Errorf("serial clinic ConcurrencyLimit() = %d, want 1", got)
	}

	parallel := &Clinic{AllowParallelAppointments: true, ParallelAppointmentsLimit: 3}
	if got := parallel.ConcurrencyLimit(); got != 3 {
		t.Errorf("parallel clinic ConcurrencyLimit() = %d, want 3", got)
	}
}
