package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/gap"
)

type GapUsecase interface {
	Analyze(ctx context.Context, career string, in SkillInput) (gap.Analysis, error)
}

type Gap struct {
	src   CatalogSource
	cache ReportCache
}

func NewGapUsecase(src CatalogSource, cache ReportCache) *Gap {
	return &Gap{src: src, cache: cache}
}

func (u *Gap) Analyze(ctx context.Context, career string, in SkillInput) (gap.Analysis, error) {
	store := u.src.Store()
	target, err := scorableCareer(store, career)
	if err != nil {
		return gap.Analysis{}, err
	}

	profile, err := buildProfile(u.src, in)
	if err != nil {
		return gap.Analysis{}, err
	}

	key := cacheKey("gap", in.fingerprint(), strings.ToLower(target.Name))
	if u.cache != nil {
		var cached gap.Analysis
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	a := gap.Analyze(store, target, profile)
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, a, 0)
	}
	return a, nil
}
