package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/ingest"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
)

func main() {
	apiBase := flag.String("api_base", "", "course API base URL (overrides COURSE_API_BASE)")
	scrapeBase := flag.String("scrape_base", "", "course listing site base URL (overrides COURSE_SCRAPE_BASE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	api := strings.TrimSpace(*apiBase)
	if api == "" {
		api = cfg.Engine.CourseAPIBase
	}
	scrape := strings.TrimSpace(*scrapeBase)
	if scrape == "" {
		scrape = cfg.Engine.CourseScrapeBase
	}

	var fetchers []usecase.CourseFetcher
	if api != "" {
		fetchers = append(fetchers, ingest.NewAPIFetcher("CourseAPI", api))
	}
	if scrape != "" {
		targets := ingest.ListingTargets(scrape, c.Provider.Store().SkillNames())
		fetchers = append(fetchers, ingest.NewSiteScraper("CourseSite", targets, 4, c.Logger))
	}
	if len(fetchers) == 0 {
		log.Fatalf("provide -api_base or -scrape_base (or the COURSE_API_BASE / COURSE_SCRAPE_BASE env vars)")
	}

	refresh := usecase.NewRefreshUsecase(
		fetchers,
		repository.NewCourseRepository(c.DB),
		c.Provider,
		c.Cache,
		c.Logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := refresh.RefreshCourses(ctx)
	if err != nil {
		log.Fatalf("course refresh failed: %v", err)
	}
	log.Printf("course refresh done source=%s seen=%d written=%d", report.Source, report.CoursesSeen, report.CoursesWritten)
}
