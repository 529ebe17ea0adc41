package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trias/pkg/ctdf"
)

func intPointer(i int) *int {
	return &i
}

func testDepartures() []*ctdf.Departure {
	return []*ctdf.Departure{
		{Line: "U6", Destination: "Gerlingen", TransportMode: ctdf.TransportTypeTram, DelayMinutes: intPointer(5), Realtime: true},
		{Line: "92", Destination: "Rotenwaldstraße", TransportMode: ctdf.TransportTypeBus},
		{Line: "S3", Destination: "Backnang", TransportMode: ctdf.TransportTypeRail, DelayMinutes: intPointer(13), Realtime: true},
	}
}

func TestDepartureFilter(t *testing.T) {
	tests := []struct {
		expression string
		expected   []string
	}{
		{`Mode == "tram"`, []string{"U6"}},
		{`Delay > 2`, []string{"U6", "S3"}},
		{`!Realtime`, []string{"92"}},
		{`Line startsWith "S" || Destination == "Gerlingen"`, []string{"U6", "S3"}},
		{`true`, []string{"U6", "92", "S3"}},
		{`false`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			filter, err := CompileDepartureFilter(tt.expression)
			require.Nil(t, err)

			departures := testDepartures()
			require.Nil(t, filter.Apply(&departures))

			lines := []string{}
			for _, departure := range departures {
				lines = append(lines, departure.Line)
			}
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestCompileDepartureFilterErrors(t *testing.T) {
	for _, expression := range []string{`Line +`, `Unknown == 1`, `Line`} {
		_, err := CompileDepartureFilter(expression)
		assert.NotNil(t, err, expression)
	}
}
