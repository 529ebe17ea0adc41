package routes

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
	"github.com/travigo/trias/pkg/transforms"
	"github.com/travigo/trias/pkg/trias"
)

const (
	DefaultBoardResults = 20
	lastUpdatedFormat   = "15:04:05"
)

//go:embed templates/*.html
var templateFiles embed.FS

var boardTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

// DepartureBoard serves the departures of a single configured stop
type DepartureBoard struct {
	Client   Client
	StopRef  string
	StopName string
	Results  int
	Filter   *transforms.DepartureFilter

	Now func() time.Time
}

type DepartureRow struct {
	Line          string             `json:"line"`
	Destination   string             `json:"destination"`
	ScheduledTime string             `json:"scheduled_time"`
	DisplayTime   string             `json:"display_time" copier:"-"`
	DelayText     string             `json:"delay_text" copier:"-"`
	DelayMinutes  int                `json:"delay_minutes" copier:"-"`
	Platform      string             `json:"platform"`
	TransportMode ctdf.TransportType `json:"transport_mode"`
	Realtime      bool               `json:"realtime"`
	LineColour    string             `json:"line_colour,omitempty"`
}

type boardData struct {
	Departures  []*DepartureRow `json:"departures"`
	LastUpdated string          `json:"last_updated"`
	StopName    string          `json:"stop_name"`
}

func DepartureBoardRouter(router fiber.Router, board *DepartureBoard) {
	router.Get("/", board.renderBoard)
	router.Get("/api/departures", board.getDepartures)
}

func newDepartureRow(departure *ctdf.Departure) *DepartureRow {
	row := &DepartureRow{}
	if err := copier.Copy(row, departure); err != nil {
		log.Error().Err(err).Str("journey", departure.JourneyRef).Msg("Failed to copy departure")
	}

	row.DisplayTime = departure.DisplayTime()
	row.DelayText = departure.DelayText()
	if departure.DelayMinutes != nil {
		row.DelayMinutes = *departure.DelayMinutes
	}
	if row.Platform == "" {
		row.Platform = "-"
	}

	return row
}

// load never fails, any error is logged and shown as an empty board
func (b *DepartureBoard) load(c *fiber.Ctx) *boardData {
	now := trias.Now
	if b.Now != nil {
		now = b.Now
	}

	results := b.Results
	if results <= 0 {
		results = DefaultBoardResults
	}

	data := &boardData{
		Departures:  []*DepartureRow{},
		LastUpdated: now().Format(lastUpdatedFormat),
		StopName:    b.StopName,
	}

	departures, err := b.Client.ListDepartures(c.UserContext(), b.StopRef, time.Time{}, results)
	if err != nil {
		log.Error().Err(err).Str("stop", b.StopRef).Msg("Error fetching departures")
		return data
	}

	if b.Filter != nil {
		if err := b.Filter.Apply(&departures); err != nil {
			log.Error().Err(err).Str("filter", b.Filter.Expression).Msg("Error filtering departures")
			return data
		}
	}

	transforms.Transform(departures)

	for _, departure := range departures {
		data.Departures = append(data.Departures, newDepartureRow(departure))
	}

	return data
}

func (b *DepartureBoard) getDepartures(c *fiber.Ctx) error {
	return c.JSON(b.load(c))
}

func (b *DepartureBoard) renderBoard(c *fiber.Ctx) error {
	var buffer bytes.Buffer
	if err := boardTemplate.Execute(&buffer, b.load(c)); err != nil {
		log.Error().Err(err).Msg("Failed to render departure board")

		c.Status(fiber.StatusInternalServerError)
		return c.SendString("Failed to render departure board")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buffer.Bytes())
}
