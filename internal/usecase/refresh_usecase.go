package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"career-compass/internal/domain/catalog"
)

type RefreshUsecase interface {
	RefreshCourses(ctx context.Context) (RefreshReport, error)
}

// CourseFetcher pulls the current course listings from an external source.
type CourseFetcher interface {
	Source() string
	Fetch(ctx context.Context) ([]catalog.Course, error)
}

// CourseStore persists fetched courses and tracks ingest runs.
type CourseStore interface {
	StartRun(ctx context.Context, source string) (uuid.UUID, error)
	FinishRun(ctx context.Context, runID uuid.UUID, status string, seen, upserted int) error
	Upsert(ctx context.Context, courses []catalog.Course) (int, error)
}

// CatalogReloader swaps in a fresh catalog snapshot after ingest.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// ReportInvalidator drops cached reports once the catalog changed
// underneath them.
type ReportInvalidator interface {
	InvalidateReports(ctx context.Context) error
}

type RefreshReport struct {
	Source         string `json:"source"`
	CoursesSeen    int    `json:"courses_seen"`
	CoursesWritten int    `json:"courses_written"`
}

type Refresh struct {
	fetchers    []CourseFetcher
	courses     CourseStore
	reloader    CatalogReloader
	invalidator ReportInvalidator
	logger      *log.Logger
}

func NewRefreshUsecase(fetchers []CourseFetcher, courses CourseStore, reloader CatalogReloader, invalidator ReportInvalidator, logger *log.Logger) *Refresh {
	return &Refresh{
		fetchers:    fetchers,
		courses:     courses,
		reloader:    reloader,
		invalidator: invalidator,
		logger:      logger,
	}
}

// RefreshCourses runs every configured fetcher, upserts what they return,
// then reloads the catalog snapshot and invalidates cached reports. A
// fetcher failing mid-run is recorded and skipped; the rest still run.
func (u *Refresh) RefreshCourses(ctx context.Context) (RefreshReport, error) {
	if len(u.fetchers) == 0 {
		return RefreshReport{}, fmt.Errorf("no course fetchers configured")
	}

	report := RefreshReport{}
	for _, f := range u.fetchers {
		seen, written, err := u.runOne(ctx, f)
		report.CoursesSeen += seen
		report.CoursesWritten += written
		if report.Source == "" {
			report.Source = f.Source()
		} else {
			report.Source += "," + f.Source()
		}
		if err != nil && u.logger != nil {
			u.logger.Printf("[Refresh] source %s failed: %v", f.Source(), err)
		}
	}

	if report.CoursesWritten > 0 {
		if err := u.reloader.Reload(ctx); err != nil {
			return report, fmt.Errorf("reload catalog: %w", err)
		}
		if u.invalidator != nil {
			if err := u.invalidator.InvalidateReports(ctx); err != nil && u.logger != nil {
				u.logger.Printf("[Refresh] report invalidation failed: %v", err)
			}
		}
	}
	return report, nil
}

func (u *Refresh) runOne(ctx context.Context, f CourseFetcher) (seen, written int, err error) {
	runID, err := u.courses.StartRun(ctx, f.Source())
	if err != nil {
		return 0, 0, fmt.Errorf("start run: %w", err)
	}

	status := "succeeded"
	defer func() {
		if finishErr := u.courses.FinishRun(ctx, runID, status, seen, written); finishErr != nil && u.logger != nil {
			u.logger.Printf("[Refresh] finish run %s: %v", runID, finishErr)
		}
	}()

	fetched, err := f.Fetch(ctx)
	if err != nil {
		status = "failed"
		return 0, 0, fmt.Errorf("fetch %s: %w", f.Source(), err)
	}
	seen = len(fetched)

	written, err = u.courses.Upsert(ctx, fetched)
	if err != nil {
		status = "failed"
		return seen, 0, fmt.Errorf("upsert %s: %w", f.Source(), err)
	}
	return seen, written, nil
}
