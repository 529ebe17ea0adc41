package trias

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		value    string
		ok       bool
		expected string
	}{
		{value: "2025-09-22T16:00:00Z", ok: true, expected: "2025-09-22 18:00:00 CEST"},
		{value: "2025-01-15T07:30:00Z", ok: true, expected: "2025-01-15 08:30:00 CET"},
		{value: "2025-09-22T18:00:00+02:00", ok: true, expected: "2025-09-22 18:00:00 CEST"},
		{value: "2025-09-22T16:00:00", ok: true, expected: "2025-09-22 18:00:00 CEST"},
		{value: "", ok: false},
		{value: "yesterday", ok: false},
		{value: "16:00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, ok := ParseTime(tt.value)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, parsed.Format("2006-01-02 15:04:05 MST"))
				assert.Equal(t, LocalTimezone, parsed.Location())
			} else {
				assert.True(t, parsed.IsZero())
			}
		})
	}
}

func TestFormatRequestTime(t *testing.T) {
	value := time.Date(2025, 3, 4, 5, 6, 7, 0, LocalTimezone)

	assert.Equal(t, "2025-03-04T05:06:07", formatRequestTime(value))

	utc := time.Date(2025, 9, 22, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-22T18:00:00", formatRequestTime(utc))
}

func TestNowIsLocal(t *testing.T) {
	assert.Equal(t, LocalTimezone, Now().Location())
}
