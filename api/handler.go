package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/render"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

// Simulate runs the algorithm named by the :algorithm route parameter or,
// failing that, by the request body. FCFS is used when neither names one.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	algorithmID := ctx.Params("algorithm", request.Algorithm)
	if algorithmID == "" {
		algorithmID = schedulers.FirstComeFirstServe.String()
	}
	algorithm, err := schedulers.ParseAlgorithm(algorithmID)
	if err != nil {
		return err
	}
	engineConfig, err := request.SchedulerConfig(s.config.Engine(), algorithm)
	if err != nil {
		return err
	}

	result, err := schedulers.Simulate(request.Processes(), algorithm, engineConfig)
	if err != nil {
		return err
	}
	s.logger.Debug("simulation finished",
		slog.String("algorithm", result.Algorithm),
		slog.Int("processes", len(request.Jobs)),
		slog.Int("makespan", result.DiagramData.Makespan),
	)

	return ctx.JSON(responses.SimulateResponse{
		Success:          true,
		SimulationResult: result,
		RawDiagram:       render.DiagramString(result.DiagramData),
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	engineConfig, err := request.SchedulerConfig(s.config.Engine(), schedulers.Algorithms()...)
	if err != nil {
		return err
	}

	results, err := schedulers.SimulateAll(request.Processes(), engineConfig)
	if err != nil {
		return err
	}
	s.logger.Debug("all simulations finished", slog.Int("processes", len(request.Jobs)))

	return ctx.JSON(responses.AllResponse{Success: true, Results: results})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.AlgorithmsResponse{Algorithms: schedulers.AlgorithmCatalogue()})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.HealthResponse{Status: "healthy", Message: "scheduler API is up"})
}
