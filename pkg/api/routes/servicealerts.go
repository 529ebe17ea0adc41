package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func ServiceAlertRouter(router fiber.Router, client Client) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getDisruptions(c, client)
	})
}

func getDisruptions(c *fiber.Ctx, client Client) error {
	departureTime, err := getDateTimeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}

	serviceAlerts, err := client.CheckDisruptions(c.UserContext(), c.Params("origin"), c.Params("destination"), departureTime)
	if err != nil {
		return upstreamError(c, err)
	}

	serviceAlertsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, serviceAlerts)
	if err != nil {
		return reduceError(c, "service alerts")
	}

	return c.JSON(serviceAlertsReduced)
}
