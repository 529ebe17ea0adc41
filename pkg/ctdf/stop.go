package ctdf

import "fmt"

type StopType string

const (
	StopTypeStop     StopType = "stop"
	StopTypePlatform StopType = "platform"
	StopTypeStation  StopType = "station"
	StopTypeUnknown  StopType = "unknown"
)

type Stop struct {
	PrimaryIdentifier string `groups:"basic"`
	PrimaryName       string `groups:"basic"`

	Locality string    `groups:"basic"`
	Location *Location `groups:"basic"`

	Type StopType `groups:"detailed"`
}

// IsComplete reports whether the stop carries both of the fields every surfaced stop needs
func (s *Stop) IsComplete() bool {
	return s != nil && s.PrimaryIdentifier != "" && s.PrimaryName != ""
}

func (s *Stop) String() string {
	if s.Locality == "" {
		return s.PrimaryName
	}

	return fmt.Sprintf("%s (%s)", s.PrimaryName, s.Locality)
}
