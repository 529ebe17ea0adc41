package trias

import (
	"strconv"
	"strings"

	"github.com/travigo/trias/pkg/ctdf"
)

type Location struct {
	StopPoint    *StopPoint   `xml:"StopPoint"`
	LocationName string       `xml:"LocationName>Text"`
	GeoPosition  *GeoPosition `xml:"GeoPosition"`
}

type StopPoint struct {
	StopPointRef  string `xml:"StopPointRef"`
	StopPointName string `xml:"StopPointName>Text"`
}

type GeoPosition struct {
	Longitude string `xml:"Longitude"`
	Latitude  string `xml:"Latitude"`
}

// ToStop converts the location into a stop. Locations that are not stop points, such as
// addresses or POIs, and stop points without a reference or name give nil.
func (l *Location) ToStop() *ctdf.Stop {
	if l.StopPoint == nil {
		return nil
	}

	stop := &ctdf.Stop{
		PrimaryIdentifier: strings.TrimSpace(l.StopPoint.StopPointRef),
		PrimaryName:       strings.TrimSpace(l.StopPoint.StopPointName),
		Locality:          strings.TrimSpace(l.LocationName),
		Location:          l.GeoPosition.toLocation(),
		Type:              ctdf.StopTypeStop,
	}

	if !stop.IsComplete() {
		return nil
	}

	return stop
}

func (g *GeoPosition) toLocation() *ctdf.Location {
	if g == nil {
		return nil
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(g.Latitude), 64)
	if err != nil {
		return nil
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(g.Longitude), 64)
	if err != nil {
		return nil
	}

	return ctdf.NewLocation(latitude, longitude)
}
