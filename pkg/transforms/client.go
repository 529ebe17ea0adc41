package transforms

import (
	"github.com/rs/zerolog/log"
)

var transforms []*TransformDefinition

var transformedTypes = []string{"ctdf.Departure", "ctdf.ConnectionLeg"}

// VVS line colours for the Stadtbahn and S-Bahn network
var lineColours = map[string]string{
	"S1":  "#58B031",
	"S2":  "#E2001A",
	"S3":  "#F39200",
	"S4":  "#0069B4",
	"S5":  "#00A6D6",
	"S6":  "#8C5A2B",
	"S60": "#8E8D3F",
	"S62": "#C3A15F",

	"U1":  "#C4A776",
	"U2":  "#F08B1D",
	"U3":  "#A88B57",
	"U4":  "#7A5C9E",
	"U5":  "#00A0DF",
	"U6":  "#E6007E",
	"U7":  "#009B77",
	"U8":  "#C6C58A",
	"U9":  "#FFD500",
	"U11": "#A6A6A6",
	"U12": "#7FB8E3",
	"U13": "#E85F95",
	"U14": "#00813D",
	"U15": "#00438A",
	"U16": "#93C01F",
	"U19": "#F7B233",
	"U29": "#9E4F9C",
}

// SetupClient registers the built in line colours followed by any additional definitions,
// later definitions win when several match
func SetupClient(additional ...*TransformDefinition) {
	transforms = nil

	for line, colour := range lineColours {
		for _, recordType := range transformedTypes {
			transforms = append(transforms, &TransformDefinition{
				Type: recordType,
				Match: map[string]string{
					"Line": line,
				},
				Data: map[string]interface{}{
					"LineColour": colour,
				},
			})
		}
	}

	for _, definition := range additional {
		if definition == nil {
			continue
		}

		transforms = append(transforms, definition)
	}

	log.Debug().Int("definitions", len(transforms)).Msg("Transforms registered")
}
