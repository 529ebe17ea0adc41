package trias

import (
	"strconv"
	"time"
)

const DefaultRequestorRef = "uni0719"

const (
	DefaultStopResults       = 20
	DefaultDepartureResults  = 40
	DefaultConnectionResults = 5
)

// RequestBuilder produces ready to send TRIAS request payloads. Every value supplied by
// the caller is XML escaped before it is placed into the template.
type RequestBuilder struct {
	RequestorRef string
	Now          func() time.Time
}

func NewRequestBuilder(requestorRef string) *RequestBuilder {
	if requestorRef == "" {
		requestorRef = DefaultRequestorRef
	}

	return &RequestBuilder{
		RequestorRef: requestorRef,
		Now:          Now,
	}
}

func (b *RequestBuilder) FindStopsRequest(locationQuery string) string {
	return b.FindStopsRequestWithLimit(locationQuery, DefaultStopResults)
}

func (b *RequestBuilder) FindStopsRequestWithLimit(locationQuery string, limit int) string {
	return b.build(findStopsTemplate, map[string]string{
		"location":        locationQuery,
		"numberOfResults": strconv.Itoa(limit),
	})
}

func (b *RequestBuilder) DeparturesRequest(stopRef string, departureTime time.Time, limit int) string {
	return b.build(departuresTemplate, map[string]string{
		"stopPointRef":    stopRef,
		"departureTime":   formatRequestTime(departureTime),
		"numberOfResults": strconv.Itoa(limit),
	})
}

func (b *RequestBuilder) TripRequest(originRef string, destinationRef string, departureTime time.Time, limit int, includeIntermediateStops bool) string {
	return b.build(tripTemplate, map[string]string{
		"originRef":                originRef,
		"destinationRef":           destinationRef,
		"departureTime":            formatRequestTime(departureTime),
		"numberOfResults":          strconv.Itoa(limit),
		"includeIntermediateStops": strconv.FormatBool(includeIntermediateStops),
	})
}

// DisruptionsRequest reuses the trip request, situations are returned in the response
// context of every trip response
func (b *RequestBuilder) DisruptionsRequest(originRef string, destinationRef string, departureTime time.Time) string {
	return b.TripRequest(originRef, destinationRef, departureTime, DefaultConnectionResults, false)
}

func (b *RequestBuilder) build(templateName string, values map[string]string) string {
	template, err := loadTemplate(templateName)
	if err != nil {
		// embedded templates cannot be missing
		panic(err)
	}

	now := Now
	if b.Now != nil {
		now = b.Now
	}

	requestorRef := b.RequestorRef
	if requestorRef == "" {
		requestorRef = DefaultRequestorRef
	}

	escaped := map[string]string{
		"timestamp":    formatRequestTime(now()),
		"requestorRef": EscapeValue(requestorRef),
	}
	for key, value := range values {
		escaped[key] = EscapeValue(value)
	}

	return FillTemplate(template, escaped)
}
