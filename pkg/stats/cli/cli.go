package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/travigo/trias/pkg/config"
	"github.com/travigo/trias/pkg/stats"
	"github.com/travigo/trias/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Collects departure delay statistics into daily CSV files",
		Subcommands: []*cli.Command{
			{
				Name:  "collect",
				Usage: "record the recent departures of one or more stops",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "stop",
						Usage: "stop point reference, may be repeated",
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "directory holding the statistics files",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.FromContext(c)

					stopRefs := util.RemoveDuplicateStrings(c.StringSlice("stop"), nil)
					if len(stopRefs) == 0 {
						stopRefs = []string{cfg.Stop}
					}

					collector := stats.NewCollector(cfg.NewClient(), stats.NewStore(directory(c, cfg)))

					results, err := collector.Collect(c.Context, stopRefs...)

					writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
					fmt.Fprintln(writer, "STOP\tADDED\tUPDATED\tUNCHANGED\tSKIPPED")
					for _, result := range results {
						fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n", result.StopRef, result.Added, result.Updated, result.Unchanged, result.Skipped)
					}
					writer.Flush()

					return err
				},
			},
			{
				Name:  "summary",
				Usage: "summarise every statistics file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "directory holding the statistics files",
					},
				},
				Action: func(c *cli.Context) error {
					store := stats.NewStore(directory(c, config.FromContext(c)))

					files, err := store.Files()
					if err != nil {
						return err
					}

					if len(files) == 0 {
						fmt.Printf("No statistics files found in %s\n", store.Directory)
						return nil
					}

					for _, file := range files {
						summary, err := stats.Summarise(file)
						if err != nil {
							return err
						}

						printSummary(summary)
					}

					return nil
				},
			},
		},
	}
}

func directory(c *cli.Context, cfg *config.Config) string {
	if dir := c.String("dir"); dir != "" {
		return dir
	}

	return cfg.StatisticsDirectory
}

func printSummary(summary *stats.Summary) {
	fmt.Printf("\n%s\n", summary.File)
	fmt.Printf("Total journeys tracked: %d\n", summary.Total)

	writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "LINE\tJOURNEYS")
	for _, line := range summary.Lines {
		fmt.Fprintf(writer, "%s\t%d\n", line.Line, line.Count)
	}
	writer.Flush()

	if summary.DelayCount == 0 {
		return
	}

	fmt.Printf("Journeys with delay data: %d\n", summary.DelayCount)
	fmt.Printf("Average delay: %.1f minutes\n", summary.AverageDelay)
	fmt.Printf("Maximum delay: %d minutes\n", summary.MaxDelay)
	fmt.Printf("Minimum delay: %d minutes\n", summary.MinDelay)
}
