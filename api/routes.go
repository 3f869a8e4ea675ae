package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"os-scheduler/config"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/util"
)

// NewApp builds the fiber application serving the scheduler API.
func NewApp(cfg *config.SchedulerConfig, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	Register(app, NewSchedulerHandlerImpl(cfg, log))
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")
	api.Post("/simulate", handler.Simulate)
	api.Get("/algorithms", handler.Algorithms)
	api.Get("/health", handler.Health)

	v1 := api.Group("/v1")
	{
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/:algorithm", handler.Simulate)
	}
}

// errorHandler answers {"error": msg}: 400 for caller mistakes, 500 for
// everything the engine should never produce.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		switch {
		case schedulers.IsClientError(err):
			code = fiber.StatusBadRequest
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.Path()),
				util.ErrAttr(err),
			)
		} else {
			log.Debug("request rejected", slog.String("path", ctx.Path()), util.ErrAttr(err))
		}
		return ctx.Status(code).JSON(responses.ErrorResponse{Error: err.Error()})
	}
}
