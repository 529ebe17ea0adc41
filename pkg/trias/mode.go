package trias

import (
	"strings"

	"github.com/travigo/trias/pkg/ctdf"
)

// ClassifyMode maps the free text mode name of a service onto a transport type.
// Rules are checked in order and the first match wins.
func ClassifyMode(modeName string) ctdf.TransportType {
	mode := strings.ToLower(modeName)

	switch {
	case strings.Contains(mode, "rail"), strings.Contains(mode, "sbahn"), strings.Contains(mode, "suburban"):
		return ctdf.TransportTypeRail
	case strings.Contains(mode, "bus"):
		return ctdf.TransportTypeBus
	case strings.Contains(mode, "tram"), strings.Contains(mode, "stadtbahn"):
		return ctdf.TransportTypeTram
	case strings.Contains(mode, "subway"), strings.Contains(mode, "ubahn"):
		return ctdf.TransportTypeSubway
	default:
		return ctdf.TransportTypeUnknown
	}
}
