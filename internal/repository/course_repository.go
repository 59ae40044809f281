package repository

import (
	"context"
	"fmt"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/catalog"

	"github.com/google/uuid"
)

// CourseRepository persists courses collected by the ingest pipeline and
// records each run for traceability.
type CourseRepository struct {
	db database.DB
}

func NewCourseRepository(db database.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) StartRun(ctx context.Context, source string) (uuid.UUID, error) {
	if r == nil || r.db == nil {
		return uuid.Nil, fmt.Errorf("nil db")
	}
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO ingest_runs (id, source, status, started_at) VALUES ($1, $2, 'running', $3)`,
		id, source, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *CourseRepository) FinishRun(ctx context.Context, runID uuid.UUID, status string, seen, upserted int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("nil db")
	}
	_, err := r.db.Exec(ctx,
		`UPDATE ingest_runs SET status=$2, courses_seen=$3, courses_upserted=$4, finished_at=$5 WHERE id=$1`,
		runID, status, seen, upserted, time.Now().UTC(),
	)
	return err
}

// Upsert writes a batch of courses inside one transaction and reports how
// many rows were actually written.
func (r *CourseRepository) Upsert(ctx context.Context, courses []catalog.Course) (int, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("nil db")
	}
	if len(courses) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	upserted := 0
	for _, c := range courses {
		affected, err := tx.Exec(ctx, `
INSERT INTO courses (id, skill, name, level, platform, duration_hours, rating, price, certificate, url, updated_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, now())
ON CONFLICT (skill, name, platform) DO UPDATE SET
	level = EXCLUDED.level,
	duration_hours = EXCLUDED.duration_hours,
	rating = EXCLUDED.rating,
	price = EXCLUDED.price,
	certificate = EXCLUDED.certificate,
	url = EXCLUDED.url,
	updated_at = now()`,
			c.Skill, c.Name, string(c.Level), c.Platform, c.DurationHours, c.Rating, c.Price, c.Certificate, c.URL,
		)
		if err != nil {
			return 0, err
		}
		upserted += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return upserted, nil
}
