package ctdf

type TransportType string

//goland:noinspection GoUnusedConst
const (
	TransportTypeRail    TransportType = "rail"
	TransportTypeBus     TransportType = "bus"
	TransportTypeTram    TransportType = "tram"
	TransportTypeSubway  TransportType = "subway"
	TransportTypeUnknown TransportType = "unknown"
)
