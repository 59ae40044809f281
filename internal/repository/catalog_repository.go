package repository

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/catalog"
)

// CatalogRepository loads the career catalog from Postgres into the
// immutable in-memory store the engine works against.
type CatalogRepository struct {
	db database.DB
}

func NewCatalogRepository(db database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Store, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("nil db")
	}

	careers, err := r.loadCareers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load careers: %w", err)
	}
	synonyms, err := r.loadSynonyms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load synonyms: %w", err)
	}
	courses, err := r.loadCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	return catalog.NewStore(careers, synonyms, courses)
}

func (r *CatalogRepository) loadCareers(ctx context.Context) ([]catalog.Career, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, description, base_salary, min_experience, max_experience
FROM careers
ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	careers := make([]catalog.Career, 0)
	index := map[string]int{}
	for rows.Next() {
		var id, name, description string
		var m catalog.Market
		if err := rows.Scan(&id, &name, &description, &m.BaseSalary, &m.MinExperience, &m.MaxExperience); err != nil {
			return nil, err
		}
		index[id] = len(careers)
		careers = append(careers, catalog.Career{Name: name, Description: description, Market: m})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRequirements(ctx, careers, index); err != nil {
		return nil, err
	}
	if err := r.attachKeywords(ctx, careers, index); err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *CatalogRepository) attachRequirements(ctx context.Context, careers []catalog.Career, index map[string]int) error {
	rows, err := r.db.Query(ctx, `
SELECT cs.career_id, s.name, cs.importance, cs.category, cs.weight, cs.is_required, cs.difficulty
FROM career_skills cs
JOIN skills s ON s.id = cs.skill_id
ORDER BY cs.career_id, cs.importance DESC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var careerID, skill, category, difficulty string
		var req catalog.Requirement
		if err := rows.Scan(&careerID, &skill, &req.Importance, &category, &req.Weight, &req.IsRequired, &difficulty); err != nil {
			return err
		}
		i, ok := index[careerID]
		if !ok {
			continue
		}
		req.Skill = skill
		req.Category = catalog.Category(category)
		if d, ok := catalog.ParseDifficulty(difficulty); ok {
			req.Difficulty = d
		} else {
			req.Difficulty = catalog.DifficultyIntermediate
		}
		careers[i].Requirements = append(careers[i].Requirements, req)
	}
	return rows.Err()
}

func (r *CatalogRepository) attachKeywords(ctx context.Context, careers []catalog.Career, index map[string]int) error {
	rows, err := r.db.Query(ctx, `
SELECT career_id, keyword, frequency, importance
FROM career_keywords
ORDER BY career_id, importance DESC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var careerID string
		var kw catalog.Keyword
		if err := rows.Scan(&careerID, &kw.Keyword, &kw.Frequency, &kw.Importance); err != nil {
			return err
		}
		if i, ok := index[careerID]; ok {
			careers[i].Keywords = append(careers[i].Keywords, kw)
		}
	}
	return rows.Err()
}

func (r *CatalogRepository) loadSynonyms(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.Query(ctx, `
SELECT s.name, ss.alias
FROM skill_synonyms ss
JOIN skills s ON s.id = ss.skill_id
ORDER BY s.name, ss.alias`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var name, alias string
		if err := rows.Scan(&name, &alias); err != nil {
			return nil, err
		}
		out[name] = append(out[name], alias)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) loadCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.db.Query(ctx, `
SELECT skill, name, level, platform, duration_hours, rating, price, certificate, url
FROM courses
ORDER BY skill, rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Course, 0)
	for rows.Next() {
		var c catalog.Course
		var level string
		if err := rows.Scan(&c.Skill, &c.Name, &level, &c.Platform, &c.DurationHours, &c.Rating, &c.Price, &c.Certificate, &c.URL); err != nil {
			return nil, err
		}
		if d, ok := catalog.ParseDifficulty(level); ok {
			c.Level = d
		} else {
			c.Level = catalog.DifficultyBeginner
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
