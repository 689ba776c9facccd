package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumescanner/resume-match/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	resumes *handlers.ResumesHandler,
	jobs *handlers.JobsHandler,
	matches *handlers.MatchesHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	r := v1.Group("/resumes", authMW)
	r.Post("/", resumes.Upload)
	r.Get("/", resumes.List)
	r.Get("/:id", resumes.Get)
	r.Delete("/:id", resumes.Delete)

	j := v1.Group("/jobs", authMW)
	j.Post("/", jobs.Create)
	j.Get("/", jobs.List)
	j.Get("/:id", jobs.Get)
	j.Put("/:id", jobs.Update)
	j.Delete("/:id", jobs.Delete)

	m := v1.Group("/matches", authMW)
	m.Post("/", matches.Create)
	m.Get("/", matches.History)
	m.Get("/:id", matches.Get)
}
