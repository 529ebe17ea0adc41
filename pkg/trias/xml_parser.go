package trias

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
	"golang.org/x/net/html/charset"
)

const (
	Namespace     = "http://www.vdv.de/trias"
	SiriNamespace = "http://www.siri.org.uk/siri"
)

// decodeElements streams the document and decodes every element with the given local
// name, wherever it sits in the tree. A document that is not well formed fails as a
// whole, nothing decoded before the error is returned.
func decodeElements[T any](reader io.Reader, localName string, handle func(*T)) error {
	var decoded []*T
	seenRoot := false

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedDocument, err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			seenRoot = true

			if ty.Name.Local == localName && (ty.Name.Space == Namespace || ty.Name.Space == "") {
				var element T
				if err = d.DecodeElement(&element, &ty); err != nil {
					return fmt.Errorf("%w: decoding %s: %s", ErrMalformedDocument, localName, err)
				}

				decoded = append(decoded, &element)
			}
		}
	}

	if !seenRoot {
		return fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}

	for _, element := range decoded {
		handle(element)
	}

	return nil
}

func ParseStops(reader io.Reader) ([]*ctdf.Stop, error) {
	stops := []*ctdf.Stop{}

	err := decodeElements(reader, "Location", func(location *Location) {
		if stop := location.ToStop(); stop != nil {
			stops = append(stops, stop)
		}
	})
	if err != nil {
		return nil, err
	}

	return stops, nil
}

func ParseDepartures(reader io.Reader) ([]*ctdf.Departure, error) {
	departures := []*ctdf.Departure{}
	dropped := 0

	err := decodeElements(reader, "StopEvent", func(stopEvent *StopEvent) {
		if departure := stopEvent.ToDeparture(); departure != nil {
			departures = append(departures, departure)
		} else {
			dropped++
		}
	})
	if err != nil {
		return nil, err
	}

	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("Dropped StopEvents with missing fields")
	}

	return departures, nil
}

func ParseConnections(reader io.Reader) ([]*ctdf.Connection, error) {
	connections := []*ctdf.Connection{}

	err := decodeElements(reader, "Trip", func(trip *Trip) {
		if connection := trip.ToConnection(); connection != nil {
			connections = append(connections, connection)
		} else {
			log.Debug().Str("trip", trip.TripID).Msg("Dropping Trip with missing fields")
		}
	})
	if err != nil {
		return nil, err
	}

	return connections, nil
}

// ParseDisruptions returns the situations from a trip response whose priority makes them
// relevant to travellers
func ParseDisruptions(reader io.Reader) ([]*ctdf.ServiceAlert, error) {
	alerts := []*ctdf.ServiceAlert{}

	err := decodeElements(reader, "PtSituation", func(situation *PtSituation) {
		alert := situation.ToServiceAlert()
		if alert != nil && alert.IsRelevant() {
			alerts = append(alerts, alert)
		}
	})
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
