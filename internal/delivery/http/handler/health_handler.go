package handler

import (
	"context"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything whose liveness the health endpoint reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports per-dependency status. The cache degrading is not an
// outage, so only a failing database turns the overall status red.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx := c.Context()

	dbStatus := pingStatus(ctx, h.db)
	cacheStatus := pingStatus(ctx, h.cache)

	data := fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	}

	if dbStatus != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
