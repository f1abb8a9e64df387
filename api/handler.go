package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/examples"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Examples(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := request.Validate(core.FirstComeFirstServe, s.config.MaxProcesses); err != nil {
		return badRequest(ctx, err.Error())
	}

	results, err := schedulers.CompareAll(request.Processes(), s.options(request))
	if err != nil {
		logrus.Warnf("compare failed: %v", err)
		return badRequest(ctx, err.Error())
	}

	response := responses.CompareResponse{
		RunId:   uuid.NewString(),
		Results: make([]responses.ScheduleResponse, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results,
			responses.NewScheduleResponse(response.RunId, result, schedulers.Analyze(result)))
	}
	logrus.Infof("run %s: compared %d algorithms on %d processes", response.RunId, len(results), len(request.Jobs))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Examples(ctx *fiber.Ctx) error {
	algorithm, err := core.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: err.Error()})
	}
	processes, err := examples.For(algorithm)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: err.Error()})
	}

	jobs := make([]requests.Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, requests.Job{
			ProcessId:   p.ID,
			Name:        p.Name,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return ctx.JSON(requests.ScheduleRequests{Jobs: jobs})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := request.Validate(algorithm, s.config.MaxProcesses); err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := schedulers.Schedule(algorithm, request.Processes(), s.options(request))
	if err != nil {
		if errors.Is(err, core.ErrUnknownAlgorithm) {
			return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: err.Error()})
		}
		logrus.Warnf("%s failed: %v", algorithm, err)
		return badRequest(ctx, "can not process request")
	}

	response := responses.NewScheduleResponse(uuid.NewString(), result, schedulers.Analyze(result))
	logrus.Infof("run %s: %s scheduled %d processes, makespan %d", response.RunId, algorithm, len(result.Processes), result.Makespan())
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) schedulers.Options {
	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return schedulers.Options{TimeQuantum: quantum}
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
