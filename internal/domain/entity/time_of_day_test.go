package entity

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "with seconds", input: "10:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Errorf("ParseTimeOfDay(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestTimeOfDayScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeOfDay
		wantErr bool
	}{
		{name: "time column text form", src: "10:00:00", want: "10:00"},
		{name: "already normalized", src: "08:00", want: "08:00"},
		{name: "bytes", src: []byte("14:30:00"), want: "14:30"},
		{name: "driver time value", src: time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC), want: "09:05"},
		{name: "null", src: nil, want: ""},
		{name: "unpadded", src: "9:00", wantErr: true},
		{name: "garbage", src: "noon", wantErr: true},
		{name: "unsupported type", src: 900, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TimeOfDay
			err := got.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Scan(%v) expected error, got %q", tt.src, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan(%v) unexpected error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := TimeOfDay("10:00").Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if v != "10:00" {
		t.Errorf("Value() = %v, want %q", v, "10:00")
	}

	v, err = TimeOfDay("").Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("Value() on unset = %v, want nil", v)
	}
}

// Loading an appointment through Scan must preserve the half-open interval
// semantics: a slot ending at 10:00 does not collide with one starting there.
func TestTimeOfDayScanPreservesOrdering(t *testing.T) {
	var start, end TimeOfDay
	if err := start.Scan("09:00:00"); err != nil {
		t.Fatal(err)
	}
	if err := end.Scan("10:00:00"); err != nil {
		t.Fatal(err)
	}

	existing := Appointment{StartTime: start, EndTime: end, Status: AppointmentStatusScheduled}
	if existing.Overlaps("10:00", "11:00") {
		t.Error("back-to-back slot counted as overlap after scanning from store")
	}
	if !existing.Overlaps("09:30", "10:30") {
		t.Error("partially intersecting slot not counted as overlap")
	}

	var windowStart TimeOfDay
	if err := windowStart.Scan("08:00:00"); err != nil {
		t.Fatal(err)
	}
	profile := ProfessionalProfile{ScheduleStartHour: windowStart, ScheduleEndHour: "18:00"}
	if !profile.WithinScheduleWindow("08:00", "09:00") {
		t.Error("booking at the exact window start rejected after scanning from store")
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		wantBefore bool
		wantAfter  bool
	}{
		{name: "earlier hour", a: "09:00", b: "10:00", wantBefore: true},
		{name: "earlier minute", a: "09:00", b: "09:01", wantBefore: true},
		{name: "equal", a: "09:00", b: "09:00"},
		{name: "later", a: "14:30", b: "09:15", wantAfter: true},
		{name: "double digit vs single digit hour", a: "09:59", b: "10:00", wantBefore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := TimeOfDay(tt.a), TimeOfDay(tt.b)
			if got := a.Before(b); got != tt.wantBefore {
				t.Errorf("%q.Before(%q) = %v, want %v", tt.a, tt.b, got, tt.wantBefore)
			}
			if got := a.After(b); got != tt.wantAfter {
				t.Errorf("%q.After(%q) = %v, want %v", tt.a, tt.b, got, tt.wantAfter)
			}
		})
	}
}
