package api

import (
	"github.com/travigo/trias/pkg/config"
	"github.com/travigo/trias/pkg/transforms"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the departure board and JSON API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "filter",
						Usage: "expression selecting the departures shown on the board",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.FromContext(c)

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Listen
					}

					var filter *transforms.DepartureFilter
					if expression := c.String("filter"); expression != "" {
						var err error
						if filter, err = transforms.CompileDepartureFilter(expression); err != nil {
							return err
						}
					}

					return SetupServer(listen, ServerOptions{
						Config: cfg,
						Client: cfg.NewClient(),
						Filter: filter,
					})
				},
			},
		},
	}
}
