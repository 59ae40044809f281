package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/scoring"
)

type ResumeUsecase interface {
	Analyze(ctx context.Context, text string) (ResumeReport, error)
}

// CareerFit is one career's fit against resume text: skill coverage and
// keyword hits blended into a single percentage.
type CareerFit struct {
	Career          string  `json:"career"`
	SkillMatchPct   float64 `json:"skill_match_pct"`
	KeywordMatchPct float64 `json:"keyword_match_pct"`
	CombinedPct     float64 `json:"combined_pct"`
}

type ResumeReport struct {
	ExtractedSkills []string    `json:"extracted_skills"`
	CareerFits      []CareerFit `json:"career_fits"`
}

type Resume struct {
	src   CatalogSource
	cache ReportCache
	blend scoring.Blend
}

func NewResumeUsecase(src CatalogSource, cache ReportCache) *Resume {
	return &Resume{src: src, cache: cache, blend: scoring.DefaultResumeBlend()}
}

var nonWordRe = regexp.MustCompile(`[^\w\s+#.]`)

// cleanText lowercases and strips punctuation so containment checks hit
// regardless of resume formatting.
func cleanText(text string) string {
	text = nonWordRe.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}

func (u *Resume) Analyze(ctx context.Context, text string) (ResumeReport, error) {
	cleaned := cleanText(text)
	if cleaned == "" {
		return ResumeReport{}, ErrEmptySkillProfile
	}

	key := cacheKey("resume", cleaned)
	if u.cache != nil {
		var cached ResumeReport
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	store := u.src.Store()

	extracted := make([]string, 0)
	for _, name := range store.SkillNames() {
		if containsSkill(cleaned, strings.ToLower(name)) {
			extracted = append(extracted, name)
			continue
		}
		for _, alias := range store.SynonymsFor(name) {
			if containsSkill(cleaned, alias) {
				extracted = append(extracted, name)
				break
			}
		}
	}

	// A resume with no recognizable skills still gets a report; every
	// career simply scores zero on skill coverage.
	n := u.src.Normalizer()
	if n == nil {
		return ResumeReport{}, ErrInternal
	}
	profile := n.Expand(normalize.ParseList(extracted))

	report := ResumeReport{ExtractedSkills: extracted}
	for _, career := range store.Careers() {
		if !career.Scorable() {
			continue
		}

		b := scoring.MatchCategories(career.Requirements, func(skill string) bool {
			_, ok := profile.Has(store, skill)
			return ok
		})

		keywordPct := keywordFit(cleaned, career)
		report.CareerFits = append(report.CareerFits, CareerFit{
			Career:          career.Name,
			SkillMatchPct:   b.WeightedMatchPct,
			KeywordMatchPct: keywordPct,
			CombinedPct:     scoring.Round1(u.blend.Combine(b.WeightedMatchPct, keywordPct)),
		})
	}

	sort.SliceStable(report.CareerFits, func(i, j int) bool {
		return report.CareerFits[i].CombinedPct > report.CareerFits[j].CombinedPct
	})

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, report, 0)
	}
	return report, nil
}

// keywordFit is the importance-weighted share of a career's keywords
// present in the text.
func keywordFit(cleaned string, career *catalog.Career) float64 {
	total, hit := 0, 0
	for _, kw := range career.Keywords {
		total += kw.Importance
		if containsSkill(cleaned, strings.ToLower(kw.Keyword)) {
			hit += kw.Importance
		}
	}
	if total == 0 {
		return 0
	}
	return scoring.Round1(float64(hit) / float64(total) * 100)
}

func containsSkill(cleaned, skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	return strings.Contains(cleaned, skill)
}
