package trias

import (
	"time"
	_ "time/tzdata"
)

// RequestTimeFormat is used for every time sent to the endpoint. It carries no zone, the
// endpoint reads it as local time at the stop.
const RequestTimeFormat = "2006-01-02T15:04:05"

var LocalTimezone *time.Location

func init() {
	var err error
	LocalTimezone, err = time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
}

// Now returns the current time in the operators timezone
func Now() time.Time {
	return time.Now().In(LocalTimezone)
}

// ParseTime reads a response timestamp, which the endpoint sends in UTC with a trailing
// Z, and converts it to local time. Timestamps without a zone are treated as UTC.
func ParseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.ParseInLocation(RequestTimeFormat, value, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
	}

	return parsed.In(LocalTimezone), true
}

// formatRequestTime writes the wall clock time in the operators timezone
func formatRequestTime(t time.Time) string {
	return t.In(LocalTimezone).Format(RequestTimeFormat)
}
