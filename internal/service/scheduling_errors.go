package service

import (
	"fmt"
	"strings"
)

// SchedulingError is a calendar, overlap or edit-guard rule violation.
// It is locally detected, user-correctable and never retried automatically;
// handlers surface the reason verbatim with a 400-class status.
type SchedulingError struct {
	Reason string
}

func (e *SchedulingError) Error() string {
	return e.Reason
}

// NewSchedulingError builds a SchedulingError with a formatted reason.
func NewSchedulingError(format string, args ...interface{}) *SchedulingError {
	return &SchedulingError{Reason: fmt.Sprintf(format, args...)}
}

// SessionLimitError means the contracted-session budget of a treatment-plan
// procedure is exhausted. It carries the dates already booked so the caller
// can show them.
type SessionLimitError struct {
	ContractedSessions int
	ScheduledDates     []string
}

func (e *SessionLimitError) Error() string {
	return fmt.Sprintf("all %d contracted sessions are already booked on: %s",
		e.ContractedSessions, strings.Join(e.ScheduledDates, ", "))
}
