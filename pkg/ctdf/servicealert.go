package ctdf

// ServiceAlert is a disruption notice published by the operator for a situation
// affecting the requested route
type ServiceAlert struct {
	SituationNumber string `groups:"detailed"`

	Priority int `groups:"basic"`

	Summary     string `groups:"basic"`
	Description string `groups:"basic"`
	Detail      string `groups:"basic"`
}

// IsRelevant reports whether the priority is in the range surfaced to travellers, which
// excludes 0 and everything from 3 upwards
func (a *ServiceAlert) IsRelevant() bool {
	return a.Priority > 0 && a.Priority < 3
}
