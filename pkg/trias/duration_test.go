package trias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatISODuration(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"PT1H23M", "1 hr 23 min"},
		{"PT45M", "45 min"},
		{"PT2H", "2 hr"},
		{"PT30S", "30 sec"},
		{"PT1H2M3S", "1 hr 2 min 3 sec"},
		{"PT0M", "0 min"},
		{"1 day", "1 day"},
		{"P1D", "P1D"},
		{"P1DT2H", "P1DT2H"},
		{"PT", "PT"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatISODuration(tt.value))
		})
	}
}
