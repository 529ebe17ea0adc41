package lookup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kr/pretty"
	"github.com/travigo/trias/pkg/config"
	"github.com/travigo/trias/pkg/ctdf"
	"github.com/travigo/trias/pkg/transforms"
	"github.com/travigo/trias/pkg/trias"
	"github.com/travigo/trias/pkg/util"
	"github.com/urfave/cli/v2"
)

const summaryWidth = 60

var dumpFlag = &cli.BoolFlag{
	Name:  "dump",
	Usage: "print the full records instead of a table",
}

var atFlag = &cli.StringFlag{
	Name:  "at",
	Usage: "departure time as HH:MM today or RFC3339, defaults to now",
}

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "stops",
			Usage:     "search stops by name",
			ArgsUsage: "<query>",
			Flags:     []cli.Flag{dumpFlag},
			Action: func(c *cli.Context) error {
				query := strings.Join(c.Args().Slice(), " ")
				if query == "" {
					return errors.New("a search query is required")
				}

				stops, err := config.FromContext(c).NewClient().FindStops(c.Context, query)
				if err != nil {
					return err
				}

				if c.Bool("dump") {
					pretty.Println(stops)
					return nil
				}

				return writeStops(os.Stdout, stops)
			},
		},
		{
			Name:      "departures",
			Usage:     "list the departures from a stop",
			ArgsUsage: "[stopRef]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "count",
					Value: trias.DefaultDepartureResults,
					Usage: "number of departures",
				},
				atFlag,
				&cli.StringFlag{
					Name:  "filter",
					Usage: "expression selecting departures, e.g. 'Mode == \"tram\"'",
				},
				dumpFlag,
			},
			Action: func(c *cli.Context) error {
				cfg := config.FromContext(c)

				stopRef := c.Args().First()
				if stopRef == "" {
					stopRef = cfg.Stop
				}

				departureTime, err := util.ParseDateTime(c.String("at"), trias.Now())
				if err != nil {
					return err
				}

				var filter *transforms.DepartureFilter
				if expression := c.String("filter"); expression != "" {
					if filter, err = transforms.CompileDepartureFilter(expression); err != nil {
						return err
					}
				}

				departures, err := cfg.NewClient().ListDepartures(c.Context, stopRef, departureTime, c.Int("count"))
				if err != nil {
					return err
				}

				if filter != nil {
					if err := filter.Apply(&departures); err != nil {
						return err
					}
				}

				transforms.Transform(departures)

				if c.Bool("dump") {
					pretty.Println(departures)
					return nil
				}

				return writeDepartures(os.Stdout, departures)
			},
		},
		{
			Name:      "connections",
			Usage:     "plan connections between two stops",
			ArgsUsage: "<originRef> <destinationRef>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "count",
					Value: trias.DefaultConnectionResults,
					Usage: "number of connections",
				},
				atFlag,
				&cli.BoolFlag{
					Name:  "intermediate",
					Usage: "include the intermediate stops of every leg",
				},
				dumpFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return errors.New("an origin and a destination stop reference are required")
				}

				departureTime, err := util.ParseDateTime(c.String("at"), trias.Now())
				if err != nil {
					return err
				}

				connections, err := config.FromContext(c).NewClient().ListConnections(c.Context, trias.TripQuery{
					OriginRef:                c.Args().Get(0),
					DestinationRef:           c.Args().Get(1),
					DepartureTime:            departureTime,
					Count:                    c.Int("count"),
					IncludeIntermediateStops: c.Bool("intermediate"),
				})
				if err != nil {
					return err
				}

				transforms.Transform(connections)

				if c.Bool("dump") {
					pretty.Println(connections)
					return nil
				}

				return writeConnections(os.Stdout, connections, c.Bool("intermediate"))
			},
		},
		{
			Name:      "disruptions",
			Usage:     "show disruptions affecting the route between two stops",
			ArgsUsage: "<originRef> <destinationRef>",
			Flags:     []cli.Flag{atFlag, dumpFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return errors.New("an origin and a destination stop reference are required")
				}

				departureTime, err := util.ParseDateTime(c.String("at"), trias.Now())
				if err != nil {
					return err
				}

				alerts, err := config.FromContext(c).NewClient().CheckDisruptions(c.Context, c.Args().Get(0), c.Args().Get(1), departureTime)
				if err != nil {
					return err
				}

				if c.Bool("dump") {
					pretty.Println(alerts)
					return nil
				}

				return writeDisruptions(os.Stdout, alerts)
			},
		},
	}
}

func writeStops(out io.Writer, stops []*ctdf.Stop) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "REF\tNAME\tLOCALITY\tLATITUDE\tLONGITUDE")

	for _, stop := range stops {
		latitude, longitude := "-", "-"
		if stop.Location != nil {
			latitude = fmt.Sprintf("%.5f", stop.Location.Latitude())
			longitude = fmt.Sprintf("%.5f", stop.Location.Longitude())
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", stop.PrimaryIdentifier, stop.PrimaryName, stop.Locality, latitude, longitude)
	}

	return writer.Flush()
}

func writeDepartures(out io.Writer, departures []*ctdf.Departure) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "LINE\tDESTINATION\tSCHEDULED\tDEPARTURE\tDELAY\tPLATFORM\tMODE")

	for _, departure := range departures {
		platform := departure.Platform
		if platform == "" {
			platform = "-"
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			departure.Line,
			departure.Destination,
			departure.ScheduledTime,
			departure.DisplayTime(),
			departure.DelayText(),
			platform,
			departure.TransportMode,
		)
	}

	return writer.Flush()
}

func writeConnections(out io.Writer, connections []*ctdf.Connection, includeIntermediateStops bool) error {
	for i, connection := range connections {
		fmt.Fprintf(out, "%d. %s - %s  %s, %d interchanges\n",
			i+1,
			connection.DepartureTime.Format(ctdf.DisplayTimeFormat),
			connection.ArrivalTime.Format(ctdf.DisplayTimeFormat),
			connection.DurationText(),
			connection.Interchanges,
		)

		writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, leg := range connection.Legs {
			line := "walk"
			if !leg.IsWalking() {
				line = *leg.Line
			}

			fmt.Fprintf(writer, "   \t%s\t%s\t%s\t%s\t%s\n",
				leg.DepartureTime.Format(ctdf.DisplayTimeFormat),
				leg.Origin.PrimaryName,
				line,
				leg.ArrivalTime.Format(ctdf.DisplayTimeFormat),
				leg.Destination.PrimaryName,
			)

			if includeIntermediateStops {
				for _, stop := range leg.IntermediateStops {
					fmt.Fprintf(writer, "   \t\t  %s\t\t\t\n", stop.PrimaryName)
				}
			}
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func writeDisruptions(out io.Writer, alerts []*ctdf.ServiceAlert) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintln(out, "No disruptions")
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "PRIORITY\tSUMMARY\tDETAIL")

	for _, alert := range alerts {
		fmt.Fprintf(writer, "%d\t%s\t%s\n", alert.Priority, alert.Summary, util.TrimString(alert.Detail, summaryWidth))
	}

	return writer.Flush()
}
