package routes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func StopsRouter(router fiber.Router, client Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchStops(c, client)
	})
}

func searchStops(c *fiber.Ctx, client Client) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return badRequest(c, errors.New("Parameter q must be set"))
	}

	stops, err := client.FindStops(c.UserContext(), query)
	if err != nil {
		return upstreamError(c, err)
	}

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stops)
	if err != nil {
		return reduceError(c, "stops")
	}

	return c.JSON(stopsReduced)
}
