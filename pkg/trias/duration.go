package trias

import (
	"fmt"
	"regexp"
	"strings"

	iso8601 "github.com/senseyeio/duration"
)

var timeOnlyDuration = regexp.MustCompile(`^PT(\d+H)?(\d+M)?(\d+S)?$`)

// FormatISODuration turns a time only ISO 8601 duration such as PT1H23M into "1 hr 23 min".
// Anything else, including durations with a date part, is returned unchanged.
func FormatISODuration(value string) string {
	if value == "PT" || !timeOnlyDuration.MatchString(value) {
		return value
	}

	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return value
	}

	var parts []string
	if strings.Contains(value, "H") {
		parts = append(parts, fmt.Sprintf("%d hr", duration.TH))
	}
	if strings.Contains(value, "M") {
		parts = append(parts, fmt.Sprintf("%d min", duration.TM))
	}
	if strings.Contains(value, "S") {
		parts = append(parts, fmt.Sprintf("%d sec", duration.TS))
	}

	return strings.Join(parts, " ")
}
