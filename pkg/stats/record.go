package stats

import (
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/travigo/trias/pkg/ctdf"
)

const (
	FileDateFormat = "02_01_2006"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// DepartureRecord is one row of a statistics file. Delay is left empty while no realtime
// data has been seen for the journey.
type DepartureRecord struct {
	JourneyRef string `csv:"JourneyRef"`
	DateTime   string `csv:"DateTime" copier:"-"`
	Line       string `csv:"Line"`
	Delay      string `csv:"Delay" copier:"-"`
	StopRef    string `csv:"StopRef" copier:"-"`
}

// KnownDelay treats anything that is not an integer as unknown
func (r *DepartureRecord) KnownDelay() (int, bool) {
	minutes, err := strconv.Atoi(strings.TrimSpace(r.Delay))
	if err != nil {
		return 0, false
	}

	return minutes, true
}

func (r *DepartureRecord) setDelay(minutes *int) {
	if minutes == nil {
		r.Delay = ""
		return
	}

	r.Delay = strconv.Itoa(*minutes)
}

func newDepartureRecord(departure *ctdf.Departure, stopRef string) (*DepartureRecord, error) {
	record := &DepartureRecord{}
	if err := copier.Copy(record, departure); err != nil {
		return nil, err
	}

	record.DateTime = departure.ScheduledDateTime.Format(DateTimeFormat)
	record.StopRef = stopRef
	record.setDelay(departure.DelayMinutes)

	return record, nil
}

func isRecordable(departure *ctdf.Departure) bool {
	return departure != nil && departure.JourneyRef != "" && departure.Line != "" && !departure.ScheduledDateTime.IsZero()
}
