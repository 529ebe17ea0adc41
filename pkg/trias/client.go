package trias

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
)

// Client composes request building, the transport and response parsing into single call
// operations. It keeps no state between calls and is safe for concurrent use as long as
// the transport is.
type Client struct {
	Transport Transport
	Builder   *RequestBuilder
}

type TripQuery struct {
	OriginRef                string
	DestinationRef           string
	DepartureTime            time.Time
	Count                    int
	IncludeIntermediateStops bool
}

func NewClient(transport Transport, builder *RequestBuilder) *Client {
	if builder == nil {
		builder = NewRequestBuilder(DefaultRequestorRef)
	}

	return &Client{
		Transport: transport,
		Builder:   builder,
	}
}

func (c *Client) FindStops(ctx context.Context, query string) ([]*ctdf.Stop, error) {
	startTime := time.Now()

	response, err := c.send(ctx, c.Builder.FindStopsRequest(query))
	if err != nil {
		return nil, err
	}

	stops, err := ParseStops(strings.NewReader(response))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("operation", "FindStops").Str("query", query).Int("results", len(stops)).Str("latency", time.Since(startTime).String()).Send()

	return stops, nil
}

// ListDepartures returns the departures from a stop, departureTime is read as local time
// at the stop. A zero departureTime means now.
func (c *Client) ListDepartures(ctx context.Context, stopRef string, departureTime time.Time, count int) ([]*ctdf.Departure, error) {
	startTime := time.Now()

	if departureTime.IsZero() {
		departureTime = Now()
	}
	if count <= 0 {
		count = DefaultDepartureResults
	}

	response, err := c.send(ctx, c.Builder.DeparturesRequest(stopRef, departureTime, count))
	if err != nil {
		return nil, err
	}

	departures, err := ParseDepartures(strings.NewReader(response))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("operation", "ListDepartures").Str("stop", stopRef).Int("results", len(departures)).Str("latency", time.Since(startTime).String()).Send()

	return departures, nil
}

func (c *Client) ListConnections(ctx context.Context, query TripQuery) ([]*ctdf.Connection, error) {
	startTime := time.Now()

	if query.DepartureTime.IsZero() {
		query.DepartureTime = Now()
	}
	if query.Count <= 0 {
		query.Count = DefaultConnectionResults
	}

	payload := c.Builder.TripRequest(query.OriginRef, query.DestinationRef, query.DepartureTime, query.Count, query.IncludeIntermediateStops)

	response, err := c.send(ctx, payload)
	if err != nil {
		return nil, err
	}

	connections, err := ParseConnections(strings.NewReader(response))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("operation", "ListConnections").Str("origin", query.OriginRef).Str("destination", query.DestinationRef).Int("results", len(connections)).Str("latency", time.Since(startTime).String()).Send()

	return connections, nil
}

func (c *Client) CheckDisruptions(ctx context.Context, originRef string, destinationRef string, departureTime time.Time) ([]*ctdf.ServiceAlert, error) {
	startTime := time.Now()

	if departureTime.IsZero() {
		departureTime = Now()
	}

	response, err := c.send(ctx, c.Builder.DisruptionsRequest(originRef, destinationRef, departureTime))
	if err != nil {
		return nil, err
	}

	alerts, err := ParseDisruptions(strings.NewReader(response))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("operation", "CheckDisruptions").Str("origin", originRef).Str("destination", destinationRef).Int("results", len(alerts)).Str("latency", time.Since(startTime).String()).Send()

	return alerts, nil
}

func (c *Client) send(ctx context.Context, payload string) (string, error) {
	response, err := c.Transport.Send(ctx, []byte(payload), ContentTypeXML)
	if err != nil {
		var transportError *TransportError
		if errors.As(err, &transportError) {
			return "", err
		}

		return "", &TransportError{Err: err}
	}

	return response, nil
}
