package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/api/routes"
	"github.com/travigo/trias/pkg/config"
	"github.com/travigo/trias/pkg/stats"
	"github.com/travigo/trias/pkg/transforms"
)

type ServerOptions struct {
	Config *config.Config
	Client routes.Client
	Filter *transforms.DepartureFilter
}

func NewApp(options ServerOptions) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	routes.DepartureBoardRouter(webApp, &routes.DepartureBoard{
		Client:   options.Client,
		StopRef:  options.Config.Stop,
		StopName: options.Config.StopName,
		Filter:   options.Filter,
	})

	group := webApp.Group("/api")

	routes.StopsRouter(group.Group("/stops"), options.Client)
	routes.PlannerRouter(group.Group("/connections"), options.Client)
	routes.ServiceAlertRouter(group.Group("/disruptions"), options.Client)
	routes.StatsRouter(group.Group("/stats"), stats.NewStore(options.Config.StatisticsDirectory))

	webApp.Get("/version", routes.APIVersion)

	return webApp
}

func SetupServer(listen string, options ServerOptions) error {
	log.Info().Str("listen", listen).Str("stop", options.Config.Stop).Msg("Starting web server")

	return NewApp(options).Listen(listen)
}
