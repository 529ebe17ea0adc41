package stats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trias/pkg/ctdf"
)

type fakeLister struct {
	mutex sync.Mutex

	departures map[string][]*ctdf.Departure
	failures   map[string]error

	requestedTimes  []time.Time
	requestedCounts []int
}

func (f *fakeLister) ListDepartures(_ context.Context, stopRef string, departureTime time.Time, count int) ([]*ctdf.Departure, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.requestedTimes = append(f.requestedTimes, departureTime)
	f.requestedCounts = append(f.requestedCounts, count)

	if err := f.failures[stopRef]; err != nil {
		return nil, err
	}

	return f.departures[stopRef], nil
}

func TestCollectorCollect(t *testing.T) {
	now := time.Date(2025, 9, 22, 18, 30, 0, 0, berlin)
	scheduled := time.Date(2025, 9, 22, 18, 0, 0, 0, berlin)

	lister := &fakeLister{
		departures: map[string][]*ctdf.Departure{
			"de:08111:6008": {
				departure("J1", "U6", scheduled, intPointer(2)),
				departure("J2", "92", scheduled, nil),
			},
			"de:08111:6118": {
				departure("J1", "U6", scheduled, intPointer(3)),
				departure("J3", "", scheduled, nil),
			},
		},
	}

	store := NewStore(t.TempDir())
	collector := NewCollector(lister, store)
	collector.Now = func() time.Time { return now }

	results, err := collector.Collect(context.Background(), "de:08111:6008", "de:08111:6118")
	require.Nil(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, &CollectResult{StopRef: "de:08111:6008", Added: 2}, results[0])
	assert.Equal(t, &CollectResult{StopRef: "de:08111:6118", Updated: 1, Skipped: 1}, results[1])

	for i := range lister.requestedTimes {
		assert.Equal(t, now.Add(-30*time.Minute), lister.requestedTimes[i])
		assert.Equal(t, 25, lister.requestedCounts[i])
	}

	records, err := ReadFile(store.FileName(scheduled))
	require.Nil(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].Delay)
}

func TestCollectorPartialFailure(t *testing.T) {
	scheduled := time.Date(2025, 9, 22, 18, 0, 0, 0, berlin)
	failure := errors.New("connection refused")

	lister := &fakeLister{
		departures: map[string][]*ctdf.Departure{
			"ok": {departure("J1", "U6", scheduled, nil)},
		},
		failures: map[string]error{
			"broken": failure,
		},
	}

	collector := NewCollector(lister, NewStore(t.TempDir()))

	results, err := collector.Collect(context.Background(), "broken", "ok")
	assert.True(t, errors.Is(err, failure))
	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].StopRef)
	assert.Equal(t, 1, results[0].Added)
}
