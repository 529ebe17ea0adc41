package ctdf

import (
	"fmt"
	"time"
)

// Connection is one trip result between two stops. Origin and Destination come from the
// first and last leg while the times come from the trip itself, so the two can disagree
// when some legs could not be read.
type Connection struct {
	Origin      *Stop `groups:"basic"`
	Destination *Stop `groups:"basic"`

	DepartureTime   time.Time `groups:"basic"`
	ArrivalTime     time.Time `groups:"basic"`
	DurationMinutes int       `groups:"basic"`

	Duration     string `groups:"detailed"`
	Interchanges int    `groups:"basic"`

	Legs []*ConnectionLeg `groups:"basic"`
}

func (c *Connection) DurationText() string {
	hours := c.DurationMinutes / 60
	minutes := c.DurationMinutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}

	return fmt.Sprintf("%dmin", minutes)
}

func (c *Connection) String() string {
	return fmt.Sprintf("%s → %s (%s)", c.Origin.PrimaryName, c.Destination.PrimaryName, c.DurationText())
}

type ConnectionLeg struct {
	Origin      *Stop `groups:"basic"`
	Destination *Stop `groups:"basic"`

	DepartureTime          time.Time  `groups:"basic"`
	ArrivalTime            time.Time  `groups:"basic"`
	EstimatedDepartureTime *time.Time `groups:"detailed"`

	OriginPlatform      string `groups:"detailed"`
	DestinationPlatform string `groups:"detailed"`

	// Line is nil for walking transfers
	Line          *string       `groups:"basic"`
	TransportMode TransportType `groups:"basic"`
	LineColour    string        `groups:"detailed"`

	IntermediateStops []*Stop `groups:"detailed"`
}

func (l *ConnectionLeg) IsWalking() bool {
	return l.Line == nil
}

func (l *ConnectionLeg) String() string {
	if l.IsWalking() {
		return fmt.Sprintf("Walk from %s to %s", l.Origin.PrimaryName, l.Destination.PrimaryName)
	}

	return fmt.Sprintf("%s from %s to %s", *l.Line, l.Origin.PrimaryName, l.Destination.PrimaryName)
}
