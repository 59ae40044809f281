package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API group mounts. Admin routes sit
// behind the auth middleware; the rest are public.
type Handlers struct {
	Match     *handler.MatchHandler
	Career    *handler.CareerHandler
	Gap       *handler.GapHandler
	Learning  *handler.LearningHandler
	Benchmark *handler.BenchmarkHandler
	Resume    *handler.ResumeHandler
	Admin     *handler.AdminHandler

	Auth *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Career != nil {
		h.Career.RegisterRoutes(r)
	}
	if h.Gap != nil {
		h.Gap.RegisterRoutes(r)
	}
	if h.Learning != nil {
		h.Learning.RegisterRoutes(r)
	}
	if h.Benchmark != nil {
		h.Benchmark.RegisterRoutes(r)
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r)
	}

	if h.Admin != nil && h.Auth != nil {
		admin := r.Group("/admin", h.Auth.Middleware())
		h.Admin.RegisterRoutes(admin)
	}
}
