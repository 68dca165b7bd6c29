package validator

import "testing"

type slotPayload struct {
	StartTime string `validate:"required,hhmm"`
}

type weekdayPayload struct {
	Days []string `validate:"required,dive,weekday"`
}

func TestHHMMTag(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "09:30"},
		{name: "midnight", value: "00:00"},
		{name: "end of day", value: "23:59"},
		{name: "no zero padding", value: "9:30", wantErr: true},
		{name: "hour overflow", value: "24:00", wantErr: true},
		{name: "minute overflow", value: "12:60", wantErr: true},
		{name: "with seconds", value: "12:30:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&slotPayload{StartTime: tt.value})
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%q) expected error, got nil", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%q) unexpected error: %v", tt.value, err)
			}
		})
	}
}

func TestWeekdayTag(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&weekdayPayload{Days: []string{"monday", "friday"}}); err != nil {
		t.Errorf("valid weekdays rejected: %v", err)
	}

	if err := cv.Validate(&weekdayPayload{Days: []string{"monday", "funday"}}); err == nil {
		t.Error("invalid weekday accepted")
	}

	// Uppercase tokens are the storage format, not the API format
	if err := cv.Validate(&weekdayPayload{Days: []string{"MONDAY"}}); err == nil {
		t.Error("uppercase weekday accepted, want lowercase only")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&slotPayload{StartTime: "9:30"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	msg, ok := formatted["StartTime"]
	if !ok {
		t.Fatalf("formatted errors missing StartTime: %v", formatted)
	}
	if msg != "StartTime must be a time in HH:MM format" {
		t.Errorf("message = %q", msg)
	}
}
