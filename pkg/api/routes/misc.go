package routes

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
	"github.com/travigo/trias/pkg/trias"
)

// Client is the set of TRIAS operations the routes serve
type Client interface {
	FindStops(ctx context.Context, query string) ([]*ctdf.Stop, error)
	ListDepartures(ctx context.Context, stopRef string, departureTime time.Time, count int) ([]*ctdf.Departure, error)
	ListConnections(ctx context.Context, query trias.TripQuery) ([]*ctdf.Connection, error)
	CheckDisruptions(ctx context.Context, originRef string, destinationRef string, departureTime time.Time) ([]*ctdf.ServiceAlert, error)
}

func getCountQuery(c *fiber.Ctx, defaultCount int) (int, error) {
	countString := c.Query("count")
	if countString == "" {
		return defaultCount, nil
	}

	count, err := strconv.Atoi(countString)
	if err != nil || count <= 0 {
		return 0, errors.New("Parameter count should be a positive integer")
	}

	return count, nil
}

// getDateTimeQuery gives the zero time when no datetime was requested, the client then uses now
func getDateTimeQuery(c *fiber.Ctx) (time.Time, error) {
	dateTimeString := c.Query("datetime")
	if dateTimeString == "" {
		return time.Time{}, nil
	}

	dateTime, err := time.Parse(time.RFC3339, dateTimeString)
	if err != nil {
		return time.Time{}, errors.New("Parameter datetime should be an RFC3339/ISO8601 datetime")
	}

	return dateTime.In(trias.LocalTimezone), nil
}

func badRequest(c *fiber.Ctx, err error) error {
	c.Status(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func upstreamError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("TRIAS request failed")

	c.Status(fiber.StatusBadGateway)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func reduceError(c *fiber.Ctx, name string) error {
	c.Status(fiber.StatusInternalServerError)
	return c.JSON(fiber.Map{
		"error": "Sheriff could not reduce " + name,
	})
}
