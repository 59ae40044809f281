package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/scoring"
	"career-compass/internal/domain/similarity"
)

const DefaultMatchLimit = 5

type MatchUsecase interface {
	TopMatches(ctx context.Context, in SkillInput, limit int) ([]scoring.Result, error)
	MatchCareer(ctx context.Context, career string, in SkillInput) (scoring.Result, error)
}

type Match struct {
	src     CatalogSource
	cache   ReportCache
	weights scoring.Weights
	logger  *log.Logger
}

func NewMatchUsecase(src CatalogSource, cache ReportCache, logger *log.Logger) *Match {
	return &Match{src: src, cache: cache, weights: scoring.DefaultWeights(), logger: logger}
}

// TopMatches scores the user against every scorable career and returns
// the best matches, highest first. limit <= 0 falls back to the default.
func (u *Match) TopMatches(ctx context.Context, in SkillInput, limit int) ([]scoring.Result, error) {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	profile, err := buildProfile(u.src, in)
	if err != nil {
		return nil, err
	}

	key := cacheKey("match", in.fingerprint(), fmt.Sprintf("limit=%d", limit))
	if u.cache != nil {
		var cached []scoring.Result
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	store := u.src.Store()
	model := u.src.Model()
	text := in.freeText()

	results := make([]scoring.Result, 0, len(store.Careers()))
	for _, career := range store.Careers() {
		if !career.Scorable() || career.RequiredImportanceSum() == 0 {
			if u.logger != nil {
				u.logger.Printf("[Match] skipping unscorable career %q", career.Name)
			}
			continue
		}
		results = append(results, u.score(store, career, profile, model, text))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, results, 0)
	}
	return results, nil
}

// MatchCareer scores the user against one named career.
func (u *Match) MatchCareer(ctx context.Context, career string, in SkillInput) (scoring.Result, error) {
	store := u.src.Store()
	target, err := scorableCareer(store, career)
	if err != nil {
		return scoring.Result{}, err
	}

	profile, err := buildProfile(u.src, in)
	if err != nil {
		return scoring.Result{}, err
	}

	key := cacheKey("match", in.fingerprint(), "career="+strings.ToLower(target.Name))
	if u.cache != nil {
		var cached scoring.Result
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	res := u.score(store, target, profile, u.src.Model(), in.freeText())
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, res, 0)
	}
	return res, nil
}

func (u *Match) score(store *catalog.Store, career *catalog.Career, profile normalize.Profile, model *similarity.Model, text string) scoring.Result {
	b := scoring.MatchCategories(career.Requirements, func(skill string) bool {
		_, ok := profile.Has(store, skill)
		return ok
	})
	semantic := 0.0
	if model != nil {
		semantic = model.Score(text, career.Name)
	}
	return scoring.Compose(career.Name, b, semantic, u.weights)
}
