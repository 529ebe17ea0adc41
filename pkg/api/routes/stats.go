package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/trias/pkg/stats"
)

func StatsRouter(router fiber.Router, store *stats.Store) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listSummaries(c, store)
	})
}

func listSummaries(c *fiber.Ctx, store *stats.Store) error {
	files, err := store.Files()
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	summaries := []*stats.Summary{}
	for _, file := range files {
		summary, err := stats.Summarise(file)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		summaries = append(summaries, summary)
	}

	return c.JSON(summaries)
}
