package ctdf

import (
	"fmt"
	"time"
)

const DisplayTimeFormat = "15:04"

// Departure is a single stop event on a departure board. Records are built fresh from
// every response and are not modified afterwards, apart from display transforms.
type Departure struct {
	JourneyRef string `groups:"basic"`

	Line        string `groups:"basic"`
	Destination string `groups:"basic"`
	StopName    string `groups:"detailed"`

	ScheduledTime     string     `groups:"basic"`
	ScheduledDateTime time.Time  `groups:"basic"`
	EstimatedDateTime *time.Time `groups:"basic"`
	DelayMinutes      *int       `groups:"basic"`

	Platform      string        `groups:"basic"`
	TransportMode TransportType `groups:"basic"`
	Realtime      bool          `groups:"basic"`

	LineColour string `groups:"detailed"`
}

// DelayBetween returns the delay in whole minutes, truncating any sub-minute remainder
// towards zero
func DelayBetween(scheduled time.Time, estimated time.Time) int {
	return int(estimated.Sub(scheduled) / time.Minute)
}

func (d *Departure) DelayText() string {
	if d.DelayMinutes == nil || *d.DelayMinutes == 0 {
		return "on time"
	}

	return fmt.Sprintf("%d min late", *d.DelayMinutes)
}

// DisplayTime is the estimated time when realtime data exists, otherwise the scheduled one
func (d *Departure) DisplayTime() string {
	if d.EstimatedDateTime != nil {
		return d.EstimatedDateTime.In(d.ScheduledDateTime.Location()).Format(DisplayTimeFormat)
	}

	return d.ScheduledTime
}

func (d *Departure) String() string {
	return fmt.Sprintf("%s → %s (%s, %s)", d.Line, d.Destination, d.DisplayTime(), d.DelayText())
}
