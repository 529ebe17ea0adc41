package util

import (
	"fmt"
	"strings"
	"time"
)

const ClockTimeFormat = "15:04"

func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}

// ParseDateTime reads either a full RFC3339 timestamp or a HH:MM clock time. Clock times are
// placed on the date of now, in its location.
func ParseDateTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(now.Location()), nil
	}

	clockTime, err := time.Parse(ClockTimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM or RFC3339", value)
	}

	return AddTimeToDate(now, clockTime), nil
}
