package app

import (
	"fmt"
	"strings"

	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ingest"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// New wires the HTTP app from an initialized container: usecases over the
// catalog provider, handlers over the usecases, routes over the handlers.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)

	matchUC := usecase.NewMatchUsecase(c.Provider, c.Cache, c.Logger)
	careerUC := usecase.NewCareerUsecase(c.Provider)
	gapUC := usecase.NewGapUsecase(c.Provider, c.Cache)
	learningUC := usecase.NewLearningUsecase(c.Provider, c.Cache)
	benchmarkUC := usecase.NewBenchmarkUsecase(c.Provider, nil, c.Config.Engine.PeerSampleSize)
	resumeUC := usecase.NewResumeUsecase(c.Provider, c.Cache)
	refreshUC := usecase.NewRefreshUsecase(
		courseFetchers(c),
		repository.NewCourseRepository(c.DB),
		c.Provider,
		c.Cache,
		c.Logger,
	)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		v1.Handlers{
			Match:     handler.NewMatchHandler(matchUC),
			Career:    handler.NewCareerHandler(careerUC),
			Gap:       handler.NewGapHandler(gapUC),
			Learning:  handler.NewLearningHandler(learningUC),
			Benchmark: handler.NewBenchmarkHandler(benchmarkUC),
			Resume:    handler.NewResumeHandler(resumeUC),
			Admin:     handler.NewAdminHandler(refreshUC),
			Auth:      middleware.NewAuthMiddleware(c.Tokens),
		},
	)
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
}

// courseFetchers lists the configured course catalog sources. Each
// fetcher only activates when its base URL is configured; the scraper
// targets every skill the current catalog knows.
func courseFetchers(c *Container) []usecase.CourseFetcher {
	var out []usecase.CourseFetcher
	if base := strings.TrimSpace(c.Config.Engine.CourseAPIBase); base != "" {
		out = append(out, ingest.NewAPIFetcher("CourseAPI", base))
	}
	if base := strings.TrimSpace(c.Config.Engine.CourseScrapeBase); base != "" {
		targets := ingest.ListingTargets(base, c.Provider.Store().SkillNames())
		out = append(out, ingest.NewSiteScraper("CourseSite", targets, 4, c.Logger))
	}
	return out
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
