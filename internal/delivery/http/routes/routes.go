package routes

import (
	"career-compass/internal/delivery/http/handler"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	api    v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers) *Registry {
	return &Registry{health: health, api: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.api)
}
