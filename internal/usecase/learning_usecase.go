package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/learning"
)

type LearningUsecase interface {
	Plan(ctx context.Context, career string, in SkillInput) (learning.Plan, error)
}

type Learning struct {
	src   CatalogSource
	cache ReportCache
}

func NewLearningUsecase(src CatalogSource, cache ReportCache) *Learning {
	return &Learning{src: src, cache: cache}
}

func (u *Learning) Plan(ctx context.Context, career string, in SkillInput) (learning.Plan, error) {
	store := u.src.Store()
	target, err := scorableCareer(store, career)
	if err != nil {
		return learning.Plan{}, err
	}

	profile, err := buildProfile(u.src, in)
	if err != nil {
		return learning.Plan{}, err
	}

	key := cacheKey("learn", in.fingerprint(), strings.ToLower(target.Name))
	if u.cache != nil {
		var cached learning.Plan
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	plan := learning.Build(store, gap.Analyze(store, target, profile))
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, plan, 0)
	}
	return plan, nil
}
