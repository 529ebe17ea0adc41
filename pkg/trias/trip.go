package trias

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
)

type Trip struct {
	TripID       string    `xml:"TripId"`
	Duration     string    `xml:"Duration"`
	StartTime    string    `xml:"StartTime"`
	EndTime      string    `xml:"EndTime"`
	Interchanges string    `xml:"Interchanges"`
	Legs         []TripLeg `xml:"TripLeg"`
}

type TripLeg struct {
	LegID string `xml:"LegId"`

	TimedLeg       *TimedLeg    `xml:"TimedLeg"`
	ContinuousLeg  *TransferLeg `xml:"ContinuousLeg"`
	InterchangeLeg *TransferLeg `xml:"InterchangeLeg"`

	StartTime string `xml:"StartTime"`
	EndTime   string `xml:"EndTime"`
}

type TimedLeg struct {
	LegBoard         StopCall   `xml:"LegBoard"`
	LegIntermediates []StopCall `xml:"LegIntermediates"`
	LegAlight        StopCall   `xml:"LegAlight"`
	Service          *Service   `xml:"Service"`
}

// TransferLeg covers both ContinuousLeg (walking to or from the trip ends) and
// InterchangeLeg (walking between two services)
type TransferLeg struct {
	LegStart LegEndpoint `xml:"LegStart"`
	LegEnd   LegEndpoint `xml:"LegEnd"`
	Service  *Service    `xml:"Service"`

	TimeWindowStart string `xml:"TimeWindowStart"`
	TimeWindowEnd   string `xml:"TimeWindowEnd"`
	StartTime       string `xml:"StartTime"`
	EndTime         string `xml:"EndTime"`
	Duration        string `xml:"Duration"`
}

type LegEndpoint struct {
	StopPointRef  string `xml:"StopPointRef"`
	StopPointName string `xml:"StopPointName>Text"`
	LocationName  string `xml:"LocationName>Text"`
}

func (e *LegEndpoint) toStop() *ctdf.Stop {
	name := strings.TrimSpace(e.StopPointName)
	if name == "" {
		name = strings.TrimSpace(e.LocationName)
	}

	return &ctdf.Stop{
		PrimaryIdentifier: strings.TrimSpace(e.StopPointRef),
		PrimaryName:       name,
		Type:              ctdf.StopTypeUnknown,
	}
}

// ToConnection gives nil when the trip has no start or end time or none of its legs
// could be read
func (t *Trip) ToConnection() *ctdf.Connection {
	departureTime, ok := ParseTime(strings.TrimSpace(t.StartTime))
	if !ok {
		return nil
	}
	arrivalTime, ok := ParseTime(strings.TrimSpace(t.EndTime))
	if !ok {
		return nil
	}

	var legs []*ctdf.ConnectionLeg
	for i := range t.Legs {
		leg := t.Legs[i].ToConnectionLeg()
		if leg == nil {
			log.Debug().Str("trip", t.TripID).Str("leg", t.Legs[i].LegID).Msg("Dropping trip leg with missing fields")
			continue
		}

		legs = append(legs, leg)
	}

	if len(legs) == 0 {
		return nil
	}

	interchanges, _ := strconv.Atoi(strings.TrimSpace(t.Interchanges))

	return &ctdf.Connection{
		Origin:          legs[0].Origin,
		Destination:     legs[len(legs)-1].Destination,
		DepartureTime:   departureTime,
		ArrivalTime:     arrivalTime,
		DurationMinutes: int(arrivalTime.Sub(departureTime) / time.Minute),
		Duration:        strings.TrimSpace(t.Duration),
		Interchanges:    interchanges,
		Legs:            legs,
	}
}

// ToConnectionLeg gives nil unless both times and both stop references are present
func (l *TripLeg) ToConnectionLeg() *ctdf.ConnectionLeg {
	var leg *ctdf.ConnectionLeg

	switch {
	case l.TimedLeg != nil:
		leg = l.TimedLeg.toConnectionLeg()
	case l.ContinuousLeg != nil:
		leg = l.ContinuousLeg.toConnectionLeg()
	case l.InterchangeLeg != nil:
		leg = l.InterchangeLeg.toConnectionLeg()
	default:
		leg = &ctdf.ConnectionLeg{TransportMode: ctdf.TransportTypeUnknown}
	}

	if leg.DepartureTime.IsZero() {
		leg.DepartureTime, _ = ParseTime(strings.TrimSpace(l.StartTime))
	}
	if leg.ArrivalTime.IsZero() {
		leg.ArrivalTime, _ = ParseTime(strings.TrimSpace(l.EndTime))
	}

	if leg.DepartureTime.IsZero() || leg.ArrivalTime.IsZero() {
		return nil
	}
	if leg.Origin == nil || leg.Origin.PrimaryIdentifier == "" {
		return nil
	}
	if leg.Destination == nil || leg.Destination.PrimaryIdentifier == "" {
		return nil
	}

	return leg
}

func (t *TimedLeg) toConnectionLeg() *ctdf.ConnectionLeg {
	leg := &ctdf.ConnectionLeg{
		Origin:              t.LegBoard.toStop(),
		Destination:         t.LegAlight.toStop(),
		OriginPlatform:      t.LegBoard.platform(),
		DestinationPlatform: t.LegAlight.platform(),
		TransportMode:       ctdf.TransportTypeUnknown,
		IntermediateStops:   []*ctdf.Stop{},
	}

	if departure := t.LegBoard.ServiceDeparture; departure != nil {
		leg.DepartureTime = firstTime(departure.TimetabledTime, departure.EstimatedTime)

		if estimated, ok := ParseTime(strings.TrimSpace(departure.EstimatedTime)); ok {
			leg.EstimatedDepartureTime = &estimated
		}
	}
	if arrival := t.LegAlight.ServiceArrival; arrival != nil {
		leg.ArrivalTime = firstTime(arrival.TimetabledTime, arrival.EstimatedTime)
	}

	for i := range t.LegIntermediates {
		stop := t.LegIntermediates[i].toStop()
		if stop.IsComplete() {
			leg.IntermediateStops = append(leg.IntermediateStops, stop)
		}
	}

	applyService(leg, t.Service)

	return leg
}

func (t *TransferLeg) toConnectionLeg() *ctdf.ConnectionLeg {
	leg := &ctdf.ConnectionLeg{
		Origin:            t.LegStart.toStop(),
		Destination:       t.LegEnd.toStop(),
		DepartureTime:     firstTime(t.TimeWindowStart, t.StartTime),
		ArrivalTime:       firstTime(t.TimeWindowEnd, t.EndTime),
		TransportMode:     ctdf.TransportTypeUnknown,
		IntermediateStops: []*ctdf.Stop{},
	}

	applyService(leg, t.Service)

	return leg
}

// applyService sets the line and mode for legs served by a vehicle, legs without a
// published line stay walking transfers
func applyService(leg *ctdf.ConnectionLeg, service *Service) {
	if service == nil {
		return
	}

	line := strings.TrimSpace(service.PublishedLineName)
	if line == "" {
		return
	}

	leg.Line = &line
	leg.TransportMode = service.transportType()
}

func firstTime(values ...string) time.Time {
	for _, value := range values {
		if parsed, ok := ParseTime(strings.TrimSpace(value)); ok {
			return parsed
		}
	}

	return time.Time{}
}
