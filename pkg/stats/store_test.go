package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trias/pkg/ctdf"
)

var berlin, _ = time.LoadLocation("Europe/Berlin")

func intPointer(i int) *int {
	return &i
}

func departure(journeyRef string, line string, scheduled time.Time, delay *int) *ctdf.Departure {
	return &ctdf.Departure{
		JourneyRef:        journeyRef,
		Line:              line,
		Destination:       "Gerlingen",
		ScheduledTime:     scheduled.Format(ctdf.DisplayTimeFormat),
		ScheduledDateTime: scheduled,
		DelayMinutes:      delay,
		Realtime:          delay != nil,
	}
}

func TestStoreRecord(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "statistics"))
	scheduled := time.Date(2025, 9, 22, 18, 0, 0, 0, berlin)

	result, err := store.Record(departure("J1", "U6", scheduled, nil), "de:08111:6008")
	require.Nil(t, err)
	assert.Equal(t, RecordAdded, result)

	result, err = store.Record(departure("J1", "U6", scheduled, nil), "de:08111:6008")
	require.Nil(t, err)
	assert.Equal(t, RecordUnchanged, result)

	result, err = store.Record(departure("J1", "U6", scheduled, intPointer(4)), "de:08111:6008")
	require.Nil(t, err)
	assert.Equal(t, RecordUpdated, result)

	result, err = store.Record(departure("", "U6", scheduled, nil), "de:08111:6008")
	require.Nil(t, err)
	assert.Equal(t, RecordSkipped, result)

	fileName := filepath.Join(store.Directory, "22_09_2025.csv")
	assert.Equal(t, fileName, store.FileName(scheduled))

	content, err := os.ReadFile(fileName)
	require.Nil(t, err)
	assert.Equal(t, "JourneyRef,DateTime,Line,Delay,StopRef\nJ1,2025-09-22 18:00:00,U6,4,de:08111:6008\n", string(content))
}

func TestStoreRecordAllSplitsByDate(t *testing.T) {
	store := NewStore(t.TempDir())
	lateEvening := time.Date(2025, 9, 22, 23, 58, 0, 0, berlin)
	afterMidnight := time.Date(2025, 9, 23, 0, 4, 0, 0, berlin)

	results, err := store.RecordAll([]*ctdf.Departure{
		departure("J5", "S3", lateEvening, intPointer(13)),
		departure("J6", "S3", afterMidnight, nil),
		departure("J7", "", afterMidnight, nil),
		nil,
	}, "de:08111:6008")
	require.Nil(t, err)
	assert.Equal(t, []RecordResult{RecordAdded, RecordAdded, RecordSkipped, RecordSkipped}, results)

	files, err := store.Files()
	require.Nil(t, err)
	assert.Equal(t, []string{
		filepath.Join(store.Directory, "22_09_2025.csv"),
		filepath.Join(store.Directory, "23_09_2025.csv"),
	}, files)

	records, err := ReadFile(files[1])
	require.Nil(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "J6", records[0].JourneyRef)
	assert.Equal(t, "", records[0].Delay)

	_, known := records[0].KnownDelay()
	assert.False(t, known)
}

func TestReadFileMissingOrEmpty(t *testing.T) {
	records, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Nil(t, err)
	assert.Empty(t, records)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.Nil(t, os.WriteFile(empty, []byte(""), 0644))

	records, err = ReadFile(empty)
	require.Nil(t, err)
	assert.Empty(t, records)
}

func TestSummarise(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "22_09_2025.csv")
	content := "JourneyRef,DateTime,Line,Delay,StopRef\n" +
		"J1,2025-09-22 18:00:00,U6,5,de:08111:6008\n" +
		"J2,2025-09-22 18:02:00,92,,de:08111:6008\n" +
		"J3,2025-09-22 18:10:00,U6,0,de:08111:6008\n" +
		"J4,2025-09-22 18:12:00,U12,13,de:08111:6008\n" +
		"J5,2025-09-22 18:20:00,U12,-1,de:08111:6008\n"
	require.Nil(t, os.WriteFile(fileName, []byte(content), 0644))

	summary, err := Summarise(fileName)
	require.Nil(t, err)

	assert.Equal(t, "22_09_2025.csv", summary.File)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, []LineCount{
		{Line: "92", Count: 1},
		{Line: "U12", Count: 2},
		{Line: "U6", Count: 2},
	}, summary.Lines)
	assert.Equal(t, 4, summary.DelayCount)
	assert.InDelta(t, 4.25, summary.AverageDelay, 0.0001)
	assert.Equal(t, 13, summary.MaxDelay)
	assert.Equal(t, -1, summary.MinDelay)
}

func TestSummariseWithoutDelays(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "22_09_2025.csv")
	require.Nil(t, os.WriteFile(fileName, []byte("JourneyRef,DateTime,Line,Delay,StopRef\nJ2,2025-09-22 18:02:00,92,,x\n"), 0644))

	summary, err := Summarise(fileName)
	require.Nil(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.DelayCount)
	assert.Equal(t, 0.0, summary.AverageDelay)
}
