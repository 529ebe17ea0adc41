package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/api"
	"github.com/travigo/trias/pkg/config"
	"github.com/travigo/trias/pkg/lookup"
	statscli "github.com/travigo/trias/pkg/stats/cli"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRIAS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRIAS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	commands := []*cli.Command{
		api.RegisterCLI(),
		statscli.RegisterCLI(),
	}
	commands = append(commands, lookup.RegisterCLI()...)

	app := &cli.App{
		Name:        "trias",
		Description: "Stop search, departure boards and journey planning against the VVS TRIAS API",

		Flags:    []cli.Flag{config.Flag},
		Before:   config.Setup,
		Commands: commands,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
