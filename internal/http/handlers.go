package http

import (
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/calc"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/domain"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/service"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

// RequestLogger logs one line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// calculator binds a JSON request body and always answers 200; failures
// travel in the response's error field.
func calculator[Req, Resp any](fn func(Req) Resp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		return c.JSON(fn(req))
	}
}

type platformInfo struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	RawMin    float64 `json:"raw_min"`
	RawMax    float64 `json:"raw_max"`
	FieldMode string  `json:"field_mode"`
}

type quantityInfo struct {
	Quantity  string        `json:"quantity"`
	Canonical string        `json:"canonical"`
	Units     []tables.Unit `json:"units"`
}

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/tables", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"tables":    svcs.Tables,
			"motor_fla": svcs.Tables.MotorFLARows(),
		})
	})

	g := app.Group("/calc")
	g.Post("/scale", calculator(svcs.Calc.Scale))
	g.Post("/scale/snippet", calculator(svcs.Calc.Snippet))
	g.Post("/convert", calculator(svcs.Calc.Convert))
	g.Post("/rtd", calculator(svcs.Calc.RTD))
	g.Post("/motor-protection", calculator(svcs.Calc.MotorProtection))
	g.Post("/enclosure", calculator(svcs.Calc.Enclosure))
	g.Post("/voltage-drop", calculator(svcs.Calc.VoltageDrop))
	g.Post("/motor-fla", calculator(svcs.Calc.MotorFLA))

	g.Get("/units", func(c *fiber.Ctx) error {
		out := make([]quantityInfo, 0, len(svcs.Tables.Quantities))
		for q, def := range svcs.Tables.Quantities {
			out = append(out, quantityInfo{Quantity: string(q), Canonical: def.Canonical, Units: def.Units})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
		return c.JSON(out)
	})

	g.Get("/scaling/platforms", func(c *fiber.Ctx) error {
		out := make([]platformInfo, 0, len(svcs.Tables.Platforms))
		for key, p := range svcs.Tables.Platforms {
			raw, mode, err := calc.ResolveRawRange(svcs.Tables, key, calc.Range{})
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			out = append(out, platformInfo{Key: string(key), Label: p.Label, RawMin: raw.Min, RawMax: raw.Max, FieldMode: string(mode)})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return c.JSON(fiber.Map{"platforms": out, "snippets": calc.SnippetNames()})
	})

	sheets := app.Group("/sheets")
	sheets.Post("/", func(c *fiber.Ctx) error {
		var req domain.SheetRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		resp, err := svcs.Sheets.Export(c.UserContext(), req)
		if err != nil {
			return sheetError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	})
	sheets.Get("/", func(c *fiber.Ctx) error {
		keys, err := svcs.Sheets.List(c.UserContext(), c.Query("calculator"))
		if err != nil {
			return sheetError(c, err)
		}
		return c.JSON(fiber.Map{"keys": keys})
	})
}

func sheetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSheetsDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidSheet):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Error().Err(err).Msg("sheet store failed")
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}
