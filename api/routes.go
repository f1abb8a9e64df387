package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
)

// NewApp builds the fiber application with every scheduler route mounted under /api/v1.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}

func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	api := router.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/examples/:algorithm", handler.Examples)
		v1.Get("/health", handler.Health)
	}
}
