package trias

import (
	"strings"

	"github.com/travigo/trias/pkg/ctdf"
)

type StopEvent struct {
	ThisCall StopCall `xml:"ThisCall>CallAtStop"`
	Service  *Service `xml:"Service"`
}

// StopCall is the shape shared by CallAtStop in stop events and LegBoard, LegAlight and
// LegIntermediates in timed trip legs
type StopCall struct {
	StopPointRef  string `xml:"StopPointRef"`
	StopPointName string `xml:"StopPointName>Text"`

	PlannedBay   string `xml:"PlannedBay>Text"`
	EstimatedBay string `xml:"EstimatedBay>Text"`

	ServiceArrival   *ServiceTime `xml:"ServiceArrival"`
	ServiceDeparture *ServiceTime `xml:"ServiceDeparture"`
}

type ServiceTime struct {
	TimetabledTime string `xml:"TimetabledTime"`
	EstimatedTime  string `xml:"EstimatedTime"`
}

type Service struct {
	JourneyRef string `xml:"JourneyRef"`

	PublishedLineName string `xml:"ServiceSection>PublishedLineName>Text"`
	ModeName          string `xml:"ServiceSection>Mode>Name>Text"`
	PtMode            string `xml:"ServiceSection>Mode>PtMode"`

	DestinationText string `xml:"DestinationText>Text"`
}

func (s *Service) transportType() ctdf.TransportType {
	if name := strings.TrimSpace(s.ModeName); name != "" {
		return ClassifyMode(name)
	}

	return ClassifyMode(s.PtMode)
}

func (c *StopCall) platform() string {
	if bay := strings.TrimSpace(c.PlannedBay); bay != "" {
		return bay
	}

	return strings.TrimSpace(c.EstimatedBay)
}

func (c *StopCall) toStop() *ctdf.Stop {
	return &ctdf.Stop{
		PrimaryIdentifier: strings.TrimSpace(c.StopPointRef),
		PrimaryName:       strings.TrimSpace(c.StopPointName),
		Type:              ctdf.StopTypeUnknown,
	}
}

// ToDeparture converts the stop event, it gives nil when the journey reference, line,
// destination or scheduled time is missing
func (e *StopEvent) ToDeparture() *ctdf.Departure {
	if e.Service == nil || e.ThisCall.ServiceDeparture == nil {
		return nil
	}

	departure := &ctdf.Departure{
		JourneyRef:    strings.TrimSpace(e.Service.JourneyRef),
		Line:          strings.TrimSpace(e.Service.PublishedLineName),
		Destination:   strings.TrimSpace(e.Service.DestinationText),
		StopName:      strings.TrimSpace(e.ThisCall.StopPointName),
		Platform:      e.ThisCall.platform(),
		TransportMode: e.Service.transportType(),
	}

	scheduled, ok := ParseTime(strings.TrimSpace(e.ThisCall.ServiceDeparture.TimetabledTime))
	if !ok || departure.JourneyRef == "" || departure.Line == "" || departure.Destination == "" {
		return nil
	}
	departure.ScheduledDateTime = scheduled
	departure.ScheduledTime = scheduled.Format(ctdf.DisplayTimeFormat)

	if estimated, ok := ParseTime(strings.TrimSpace(e.ThisCall.ServiceDeparture.EstimatedTime)); ok {
		delay := ctdf.DelayBetween(scheduled, estimated)

		departure.EstimatedDateTime = &estimated
		departure.DelayMinutes = &delay
		departure.Realtime = true
	}

	return departure
}
