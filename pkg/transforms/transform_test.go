package transforms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trias/pkg/ctdf"
)

func stringPointer(s string) *string {
	return &s
}

func TestTransformDepartureColours(t *testing.T) {
	SetupClient()

	departures := []*ctdf.Departure{
		{Line: "U6", Destination: "Gerlingen"},
		{Line: "S2", Destination: "Filderstadt"},
		{Line: "92", Destination: "Rotenwaldstraße"},
	}

	Transform(departures)

	assert.Equal(t, "#E6007E", departures[0].LineColour)
	assert.Equal(t, "#E2001A", departures[1].LineColour)
	assert.Equal(t, "", departures[2].LineColour)
}

func TestTransformNestedConnectionLegs(t *testing.T) {
	SetupClient()

	estimated := time.Now()
	connection := &ctdf.Connection{
		Origin:      &ctdf.Stop{PrimaryIdentifier: "a", PrimaryName: "A", Location: ctdf.NewLocation(48.7, 9.1)},
		Destination: &ctdf.Stop{PrimaryIdentifier: "b", PrimaryName: "B"},
		Legs: []*ctdf.ConnectionLeg{
			{Line: stringPointer("U12"), EstimatedDepartureTime: &estimated},
			{Line: nil},
			{Line: stringPointer("S1"), IntermediateStops: []*ctdf.Stop{{PrimaryIdentifier: "c", PrimaryName: "C"}}},
		},
	}

	Transform(connection)

	assert.Equal(t, "#7FB8E3", connection.Legs[0].LineColour)
	assert.Equal(t, "", connection.Legs[1].LineColour)
	assert.Equal(t, "#58B031", connection.Legs[2].LineColour)
}

func TestAdditionalDefinitionsOverrideDefaults(t *testing.T) {
	SetupClient(
		&TransformDefinition{
			Type:  "ctdf.Departure",
			Match: map[string]string{"Line": "U6", "Destination": "Fasanenhof"},
			Data:  map[string]interface{}{"LineColour": "#000000"},
		},
		&TransformDefinition{
			Type:  "ctdf.Departure",
			Match: map[string]string{"TransportMode": "bus"},
			Data:  map[string]interface{}{"LineColour": "#FFFFFF"},
		},
		nil,
	)

	departures := []*ctdf.Departure{
		{Line: "U6", Destination: "Fasanenhof"},
		{Line: "U6", Destination: "Gerlingen"},
		{Line: "92", TransportMode: ctdf.TransportTypeBus},
	}

	Transform(departures)

	assert.Equal(t, "#000000", departures[0].LineColour)
	assert.Equal(t, "#E6007E", departures[1].LineColour)
	assert.Equal(t, "#FFFFFF", departures[2].LineColour)
}

func TestTransformDefinitionTypeAndDataChecks(t *testing.T) {
	SetupClient(
		&TransformDefinition{
			Type:  "ctdf.ConnectionLeg",
			Match: map[string]string{"Line": "X1"},
			Data:  map[string]interface{}{"LineColour": "#111111"},
		},
		&TransformDefinition{
			Match: map[string]string{"Line": "X2"},
			Data:  map[string]interface{}{"LineColour": 42, "Missing": "ignored", "Platform": "Gleis 9"},
		},
	)

	departures := []*ctdf.Departure{
		{Line: "X1"},
		{Line: "X2"},
	}

	require.NotPanics(t, func() { Transform(departures) })

	assert.Equal(t, "", departures[0].LineColour)
	assert.Equal(t, "", departures[1].LineColour)
	assert.Equal(t, "Gleis 9", departures[1].Platform)
}

func TestTransformIgnoresNil(t *testing.T) {
	SetupClient()

	var departure *ctdf.Departure
	assert.NotPanics(t, func() {
		Transform(departure)
		Transform(nil)
		Transform([]*ctdf.Departure{nil})
	})
}
