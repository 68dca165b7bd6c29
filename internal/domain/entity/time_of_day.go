package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeOfDay is a zero-padded 24h wall-clock value ("HH:MM").
// Zero padding is what makes plain string comparison order-preserving,
// so construction goes through ParseTimeOfDay and nothing else.
type TimeOfDay string

var ErrInvalidTimeOfDay = errors.New("invalid time of day, use zero-padded HH:MM")

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseTimeOfDay validates s as a zero-padded HH:MM value.
// Note that time.Parse("15:04", ...) is not enough here: it accepts "9:05",
// which would break lexicographic ordering.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return "", ErrInvalidTimeOfDay
	}
	return TimeOfDay(s), nil
}

func (t TimeOfDay) String() string {
	return string(t)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return string(t) < string(other)
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return string(t) > string(other)
}

// IsZero reports whether t is unset.
func (t TimeOfDay) IsZero() bool {
	return t == ""
}

// Value implements driver.Valuer. An unset value is stored as NULL.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres time columns read back in their
// canonical "HH:MM:SS" text form; the seconds are dropped so loaded values
// keep the zero-padded HH:MM shape string comparison depends on.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanText(v)
	case []byte:
		return t.scanText(string(v))
	case time.Time:
		*t = TimeOfDay(v.Format("15:04"))
		return nil
	}
	return fmt.Errorf("cannot scan %T into TimeOfDay", src)
}

func (t *TimeOfDay) scanText(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into TimeOfDay: %w", s, err)
	}
	*t = parsed
	return nil
}
