package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/trias/pkg/transforms"
	"github.com/travigo/trias/pkg/trias"
)

func PlannerRouter(router fiber.Router, client Client) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getConnections(c, client)
	})
}

func getConnections(c *fiber.Ctx, client Client) error {
	count, err := getCountQuery(c, trias.DefaultConnectionResults)
	if err != nil {
		return badRequest(c, err)
	}

	departureTime, err := getDateTimeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}

	includeIntermediateStops := false
	if intermediate := c.Query("intermediate"); intermediate != "" {
		includeIntermediateStops, err = strconv.ParseBool(intermediate)
		if err != nil {
			return badRequest(c, errors.New("Parameter intermediate should be a boolean"))
		}
	}

	connections, err := client.ListConnections(c.UserContext(), trias.TripQuery{
		OriginRef:                c.Params("origin"),
		DestinationRef:           c.Params("destination"),
		DepartureTime:            departureTime,
		Count:                    count,
		IncludeIntermediateStops: includeIntermediateStops,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	transforms.Transform(connections)

	connectionsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, connections)
	if err != nil {
		return reduceError(c, "connections")
	}

	return c.JSON(connectionsReduced)
}
