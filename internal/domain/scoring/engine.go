package scoring

import (
	"math"

	"career-compass/internal/domain/catalog"
)

// Weights is the blend applied to the three base-score signals. Callers
// that need a different mix (the resume analyzer runs 70/30 over skills and
// keywords) carry their own instance instead of copying formulas.
type Weights struct {
	WeightedSkills float64
	RequiredSkills float64
	Semantic       float64
}

func DefaultWeights() Weights {
	return Weights{WeightedSkills: 0.60, RequiredSkills: 0.25, Semantic: 0.15}
}

// Blend is a two-signal mix used where only a pair of percentages is
// combined, e.g. resume skill match vs keyword fit.
type Blend struct {
	Primary   float64
	Secondary float64
}

func DefaultResumeBlend() Blend {
	return Blend{Primary: 0.70, Secondary: 0.30}
}

func (b Blend) Combine(primary, secondary float64) float64 {
	return primary*b.Primary + secondary*b.Secondary
}

// RequirementScore is one requirement annotated with its weighted score,
// reported in matched/missing breakdowns.
type RequirementScore struct {
	Skill         string
	Category      catalog.Category
	Weight        float64
	WeightedScore float64
	Importance    int
	IsRequired    bool
	Difficulty    catalog.Difficulty
}

type CategoryCoverage struct {
	Matched int
	Total   int
	Score   float64
}

// Breakdown is the category matcher output: every figure the composite
// scorer consumes plus the per-category detail results must carry.
type Breakdown struct {
	WeightedMatchPct float64
	RequiredMatchPct float64

	CategoryScores    map[catalog.Category]CategoryCoverage
	MatchedByCategory map[catalog.Category][]RequirementScore
	MissingByCategory map[catalog.Category][]RequirementScore
	RequiredMissing   map[catalog.Category][]RequirementScore

	ExactMatches    int
	RequiredMatches int
	TotalSkills     int
	TotalRequired   int

	TotalWeighted         float64
	TotalPossibleWeighted float64
}

// MatchCategories computes weighted and required coverage of a user skill
// set against a career's requirements. has reports whether the user covers
// a given catalog skill (synonym-aware, supplied by the normalizer).
// Careers with zero requirements must be filtered out before this call.
func MatchCategories(reqs []catalog.Requirement, has func(skill string) bool) Breakdown {
	b := Breakdown{
		CategoryScores:    map[catalog.Category]CategoryCoverage{},
		MatchedByCategory: map[catalog.Category][]RequirementScore{},
		MissingByCategory: map[catalog.Category][]RequirementScore{},
		RequiredMissing:   map[catalog.Category][]RequirementScore{},
		TotalSkills:       len(reqs),
	}

	totals := map[catalog.Category]int{}
	for _, r := range reqs {
		weighted := r.Weight * 10
		b.TotalPossibleWeighted += weighted
		totals[r.Category]++
		if r.IsRequired {
			b.TotalRequired++
		}

		rs := RequirementScore{
			Skill:         r.Skill,
			Category:      r.Category,
			Weight:        r.Weight,
			WeightedScore: weighted,
			Importance:    r.Importance,
			IsRequired:    r.IsRequired,
			Difficulty:    r.Difficulty,
		}

		if has(r.Skill) {
			b.ExactMatches++
			b.TotalWeighted += weighted
			b.MatchedByCategory[r.Category] = append(b.MatchedByCategory[r.Category], rs)
			if r.IsRequired {
				b.RequiredMatches++
			}
			continue
		}

		b.MissingByCategory[r.Category] = append(b.MissingByCategory[r.Category], rs)
		if r.IsRequired {
			b.RequiredMissing[r.Category] = append(b.RequiredMissing[r.Category], rs)
		}
	}

	for cat, total := range totals {
		matched := len(b.MatchedByCategory[cat])
		b.CategoryScores[cat] = CategoryCoverage{
			Matched: matched,
			Total:   total,
			Score:   Round1(float64(matched) / float64(total) * 100),
		}
	}

	if b.TotalPossibleWeighted > 0 {
		b.WeightedMatchPct = Round1(b.TotalWeighted / b.TotalPossibleWeighted * 100)
	}
	if b.TotalRequired > 0 {
		b.RequiredMatchPct = Round1(float64(b.RequiredMatches) / float64(b.TotalRequired) * 100)
	}
	return b
}

// Result is a career match with its full component breakdown. Explainability
// is part of the contract: every additive piece of the score is reported.
type Result struct {
	Career     string
	Score      float64
	BaseScore  float64
	BonusScore float64
	Semantic   float64
	Breakdown  Breakdown
}

// Compose merges category coverage and semantic similarity into the final
// bounded score: weighted base, coverage bonuses, then safety caps. Every
// cap is evaluated against the original uncapped value and the minimum is
// taken, so the result does not depend on cap ordering.
func Compose(career string, b Breakdown, semantic float64, w Weights) Result {
	base := b.WeightedMatchPct*w.WeightedSkills +
		b.RequiredMatchPct*w.RequiredSkills +
		semantic*100*w.Semantic

	bonus := 0.0
	switch {
	case b.RequiredMatchPct >= 80:
		bonus += 15
	case b.RequiredMatchPct >= 60:
		bonus += 10
	case b.RequiredMatchPct >= 40:
		bonus += 5
	}
	if float64(b.ExactMatches) >= 0.5*float64(b.TotalRequired) {
		bonus += 5
	}
	if semantic > 0.3 {
		bonus += 5
	}

	final := math.Min(100, base+bonus)

	capped := final
	if b.TotalSkills < 8 && final > 75 {
		capped = math.Min(capped, 75)
	}
	if final > 90 && b.RequiredMatchPct < 80 {
		capped = math.Min(capped, 85)
	}
	if final > 70 && b.RequiredMatchPct < 60 {
		capped = math.Min(capped, 65)
	}

	return Result{
		Career:     career,
		Score:      Round1(clampPct(capped)),
		BaseScore:  Round1(base),
		BonusScore: Round1(bonus),
		Semantic:   Round3(semantic),
		Breakdown:  b,
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
