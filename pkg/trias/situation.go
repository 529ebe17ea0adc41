package trias

import (
	"strconv"
	"strings"

	"github.com/travigo/trias/pkg/ctdf"
)

type PtSituation struct {
	SituationNumber string `xml:"SituationNumber"`
	Priority        string `xml:"Priority"`
	Summary         string `xml:"Summary"`
	Description     string `xml:"Description"`
	Detail          string `xml:"Detail"`
}

// ToServiceAlert gives nil when the priority is missing or not an integer
func (s *PtSituation) ToServiceAlert() *ctdf.ServiceAlert {
	priority, err := strconv.Atoi(strings.TrimSpace(s.Priority))
	if err != nil {
		return nil
	}

	return &ctdf.ServiceAlert{
		SituationNumber: strings.TrimSpace(s.SituationNumber),
		Priority:        priority,
		Summary:         strings.TrimSpace(s.Summary),
		Description:     strings.TrimSpace(s.Description),
		Detail:          strings.TrimSpace(s.Detail),
	}
}
