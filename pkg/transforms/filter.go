package transforms

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/trias/pkg/ctdf"
	"github.com/travigo/trias/pkg/util"
)

// DepartureEnvironment is what a filter expression can refer to, for example
// `Mode == "tram" && Delay > 2`
type DepartureEnvironment struct {
	Line          string
	Destination   string
	Platform      string
	Mode          string
	Delay         int
	Realtime      bool
	ScheduledTime string
}

func newDepartureEnvironment(departure *ctdf.Departure) DepartureEnvironment {
	environment := DepartureEnvironment{
		Line:          departure.Line,
		Destination:   departure.Destination,
		Platform:      departure.Platform,
		Mode:          string(departure.TransportMode),
		Realtime:      departure.Realtime,
		ScheduledTime: departure.ScheduledTime,
	}

	if departure.DelayMinutes != nil {
		environment.Delay = *departure.DelayMinutes
	}

	return environment
}

type DepartureFilter struct {
	Expression string

	program *vm.Program
}

func CompileDepartureFilter(expression string) (*DepartureFilter, error) {
	program, err := expr.Compile(expression, expr.Env(DepartureEnvironment{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}

	return &DepartureFilter{
		Expression: expression,
		program:    program,
	}, nil
}

// Apply removes the departures the expression does not accept
func (f *DepartureFilter) Apply(departures *[]*ctdf.Departure) error {
	var runErr error

	util.InPlaceFilter(departures, func(departure *ctdf.Departure) bool {
		if runErr != nil {
			return false
		}

		output, err := expr.Run(f.program, newDepartureEnvironment(departure))
		if err != nil {
			runErr = err
			return false
		}

		keep, _ := output.(bool)
		return keep
	})

	return runErr
}
