package stats

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/trias/pkg/ctdf"
	"github.com/travigo/trias/pkg/trias"
)

const (
	DefaultLookback = 30 * time.Minute
	DefaultResults  = 25
)

// DepartureLister is the part of the TRIAS client the collector needs
type DepartureLister interface {
	ListDepartures(ctx context.Context, stopRef string, departureTime time.Time, count int) ([]*ctdf.Departure, error)
}

type Collector struct {
	Client DepartureLister
	Store  *Store

	Lookback time.Duration
	Results  int
	Now      func() time.Time
}

type CollectResult struct {
	StopRef string

	Added     int
	Updated   int
	Unchanged int
	Skipped   int
}

type stopDepartures struct {
	index      int
	stopRef    string
	departures []*ctdf.Departure
}

func NewCollector(client DepartureLister, store *Store) *Collector {
	return &Collector{
		Client:   client,
		Store:    store,
		Lookback: DefaultLookback,
		Results:  DefaultResults,
		Now:      trias.Now,
	}
}

// Collect fetches the departures of every stop concurrently, starting Lookback ago so that
// journeys which already left get their final delay, and records them one stop at a time.
// Stops whose request failed are left out and their errors returned together.
func (c *Collector) Collect(ctx context.Context, stopRefs ...string) ([]*CollectResult, error) {
	departureTime := c.Now().Add(-c.Lookback)

	p := pool.NewWithResults[*stopDepartures]().WithContext(ctx)

	for index, stopRef := range stopRefs {
		p.Go(func(ctx context.Context) (*stopDepartures, error) {
			departures, err := c.Client.ListDepartures(ctx, stopRef, departureTime, c.Results)
			if err != nil {
				log.Error().Err(err).Str("stop", stopRef).Msg("Failed to retrieve departures")
				return nil, err
			}

			return &stopDepartures{
				index:      index,
				stopRef:    stopRef,
				departures: departures,
			}, nil
		})
	}

	fetched, fetchErr := p.Wait()

	ordered := make([]*stopDepartures, len(stopRefs))
	for _, item := range fetched {
		if item != nil {
			ordered[item.index] = item
		}
	}

	var results []*CollectResult
	for _, item := range ordered {
		if item == nil {
			continue
		}

		recordResults, err := c.Store.RecordAll(item.departures, item.stopRef)
		if err != nil {
			return results, err
		}

		result := &CollectResult{StopRef: item.stopRef}
		for _, recordResult := range recordResults {
			switch recordResult {
			case RecordAdded:
				result.Added++
			case RecordUpdated:
				result.Updated++
			case RecordUnchanged:
				result.Unchanged++
			case RecordSkipped:
				result.Skipped++
			}
		}

		log.Info().
			Str("stop", result.StopRef).
			Int("added", result.Added).
			Int("updated", result.Updated).
			Int("unchanged", result.Unchanged).
			Msg("Collected departure statistics")

		results = append(results, result)
	}

	return results, fetchErr
}
