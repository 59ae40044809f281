package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/repository"
)

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	careers := []catalog.Career{
		{
			Name:        "Backend Developer",
			Description: "Builds APIs and services with Go, SQL and Docker.",
			Requirements: []catalog.Requirement{
				{Skill: "Go", Importance: 9, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "SQL", Importance: 8, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Docker", Importance: 6, Category: catalog.CategoryIntermediate, Weight: 0.7, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
				{Skill: "Kubernetes", Importance: 5, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Communication", Importance: 5, Category: catalog.CategorySoft, Weight: 0.6, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
			},
			Keywords: []catalog.Keyword{
				{Keyword: "microservices", Frequency: 0.6, Importance: 8},
				{Keyword: "rest api", Frequency: 0.5, Importance: 6},
			},
			Market: catalog.Market{BaseSalary: 90000, MinExperience: 2, MaxExperience: 10},
		},
		{
			Name:        "Data Analyst",
			Description: "Analyzes data with SQL, Excel and dashboards.",
			Requirements: []catalog.Requirement{
				{Skill: "SQL", Importance: 9, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Excel", Importance: 7, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
				{Skill: "Tableau", Importance: 5, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyBeginner},
			},
			Market: catalog.Market{BaseSalary: 70000, MinExperience: 1, MaxExperience: 8},
		},
		{
			Name:        "Archived Role",
			Description: "No longer maintained.",
			Market:      catalog.Market{BaseSalary: 50000, MinExperience: 1, MaxExperience: 5},
		},
	}
	synonyms := map[string][]string{
		"Go":  {"golang"},
		"SQL": {"postgresql", "mysql"},
	}
	courses := []catalog.Course{
		{Skill: "Go", Name: "Go Fundamentals", Level: catalog.DifficultyBeginner, Platform: "Coursera", DurationHours: 20, Rating: 4.6},
		{Skill: "Docker", Name: "Docker Essentials", Level: catalog.DifficultyBeginner, Platform: "Udemy", DurationHours: 10, Rating: 4.4},
	}
	store, err := catalog.NewStore(careers, synonyms, courses)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func testSource(t *testing.T) CatalogSource {
	t.Helper()
	return repository.NewStaticProvider(testStore(t))
}

// memCache is an in-process ReportCache for exercising hit/miss paths.
type memCache struct {
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func TestTopMatchesOrderingAndLimit(t *testing.T) {
	u := NewMatchUsecase(testSource(t), nil, nil)

	in := SkillInput{Skills: []string{"SQL", "Excel"}}
	results, err := u.TopMatches(context.Background(), in, 10)
	if err != nil {
		t.Fatalf("TopMatches: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 scorable careers", len(results))
	}
	if results[0].Career != "Data Analyst" {
		t.Errorf("top match = %s, want Data Analyst", results[0].Career)
	}
	if results[0].Score < results[1].Score {
		t.Errorf("results not sorted: %.1f < %.1f", results[0].Score, results[1].Score)
	}

	one, err := u.TopMatches(context.Background(), in, 1)
	if err != nil {
		t.Fatalf("TopMatches limit=1: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("limit=1 returned %d results", len(one))
	}
}

func TestTopMatchesEmptyProfile(t *testing.T) {
	u := NewMatchUsecase(testSource(t), nil, nil)
	_, err := u.TopMatches(context.Background(), SkillInput{}, 5)
	if !errors.Is(err, ErrEmptySkillProfile) {
		t.Fatalf("err = %v, want ErrEmptySkillProfile", err)
	}
}

func TestMatchCareerSynonymsCount(t *testing.T) {
	u := NewMatchUsecase(testSource(t), nil, nil)

	res, err := u.MatchCareer(context.Background(), "backend developer", SkillInput{Skills: []string{"golang", "postgresql"}})
	if err != nil {
		t.Fatalf("MatchCareer: %v", err)
	}
	if res.Breakdown.ExactMatches != 2 {
		t.Errorf("ExactMatches = %d, want 2 via synonyms", res.Breakdown.ExactMatches)
	}
	if res.Score <= 0 {
		t.Errorf("Score = %.1f, want > 0", res.Score)
	}
}

func TestMatchCareerErrors(t *testing.T) {
	u := NewMatchUsecase(testSource(t), nil, nil)
	ctx := context.Background()
	in := SkillInput{Skills: []string{"SQL"}}

	if _, err := u.MatchCareer(ctx, "Quantum Plumber", in); !errors.Is(err, ErrCareerNotFound) {
		t.Errorf("unknown career err = %v, want ErrCareerNotFound", err)
	}
	if _, err := u.MatchCareer(ctx, "Archived Role", in); !errors.Is(err, ErrUnscorable) {
		t.Errorf("requirement-less career err = %v, want ErrUnscorable", err)
	}
	if _, err := u.MatchCareer(ctx, "Backend Developer", SkillInput{}); !errors.Is(err, ErrEmptySkillProfile) {
		t.Errorf("empty input err = %v, want ErrEmptySkillProfile", err)
	}
}

func TestMatchCareerCacheRoundTrip(t *testing.T) {
	cache := newMemCache()
	u := NewMatchUsecase(testSource(t), cache, nil)
	ctx := context.Background()
	in := SkillInput{Skills: []string{"Go", "SQL"}}

	first, err := u.MatchCareer(ctx, "Backend Developer", in)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := u.MatchCareer(ctx, "Backend Developer", in)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("second call wrote to cache, sets = %d", cache.sets)
	}
	if second.Score != first.Score || second.Career != first.Career {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestMatchCacheKeyIgnoresSkillOrder(t *testing.T) {
	a := SkillInput{Skills: []string{"Go", "SQL", "Docker"}}
	b := SkillInput{Skills: []string{"docker", "sql", "go"}}
	if a.fingerprint() != b.fingerprint() {
		t.Errorf("fingerprints differ: %q vs %q", a.fingerprint(), b.fingerprint())
	}
}

func TestGapAnalyzeThroughProvider(t *testing.T) {
	u := NewGapUsecase(testSource(t), newMemCache())

	a, err := u.Analyze(context.Background(), "Backend Developer", SkillInput{Skills: []string{"golang", "Communication"}})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.SkillsCovered != 2 {
		t.Errorf("SkillsCovered = %d, want 2", a.SkillsCovered)
	}
	if len(a.RequiredMissing) != 2 {
		t.Errorf("RequiredMissing = %d, want SQL and Docker", len(a.RequiredMissing))
	}
	if a.RequiredMissing[0].Skill != "SQL" {
		t.Errorf("first missing = %s, want SQL by importance", a.RequiredMissing[0].Skill)
	}
}

func TestGapErrors(t *testing.T) {
	u := NewGapUsecase(testSource(t), nil)
	ctx := context.Background()

	if _, err := u.Analyze(ctx, "nope", SkillInput{Skills: []string{"Go"}}); !errors.Is(err, ErrCareerNotFound) {
		t.Errorf("err = %v, want ErrCareerNotFound", err)
	}
	if _, err := u.Analyze(ctx, "Backend Developer", SkillInput{}); !errors.Is(err, ErrEmptySkillProfile) {
		t.Errorf("err = %v, want ErrEmptySkillProfile", err)
	}
}

// optionalOnlySource holds a career whose every requirement is optional.
// Nothing required means nothing to weight an analysis against.
func optionalOnlySource(t *testing.T) CatalogSource {
	t.Helper()
	careers := []catalog.Career{
		{
			Name:        "Hobbyist",
			Description: "Dabbles in whatever looks fun.",
			Requirements: []catalog.Requirement{
				{Skill: "Photography", Importance: 5, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyBeginner},
				{Skill: "Blogging", Importance: 3, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyBeginner},
			},
			Market: catalog.Market{BaseSalary: 30000, MinExperience: 0, MaxExperience: 5},
		},
	}
	store, err := catalog.NewStore(careers, nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return repository.NewStaticProvider(store)
}

func TestOptionalOnlyCareerIsUnscorable(t *testing.T) {
	src := optionalOnlySource(t)
	ctx := context.Background()
	in := SkillInput{Skills: []string{"Photography"}}

	if _, err := NewMatchUsecase(src, nil, nil).MatchCareer(ctx, "Hobbyist", in); !errors.Is(err, ErrUnscorable) {
		t.Errorf("match err = %v, want ErrUnscorable", err)
	}
	if _, err := NewGapUsecase(src, nil).Analyze(ctx, "Hobbyist", in); !errors.Is(err, ErrUnscorable) {
		t.Errorf("gap err = %v, want ErrUnscorable", err)
	}
	if _, err := NewLearningUsecase(src, nil).Plan(ctx, "Hobbyist", in); !errors.Is(err, ErrUnscorable) {
		t.Errorf("learning err = %v, want ErrUnscorable", err)
	}
	seeded := func() *rand.Rand { return rand.New(rand.NewSource(1)) }
	if _, err := NewBenchmarkUsecase(src, seeded, 8).Benchmark(ctx, "Hobbyist", in, 0); !errors.Is(err, ErrUnscorable) {
		t.Errorf("benchmark err = %v, want ErrUnscorable", err)
	}
}

func TestLearningPlanThroughProvider(t *testing.T) {
	u := NewLearningUsecase(testSource(t), newMemCache())

	plan, err := u.Plan(context.Background(), "Backend Developer", SkillInput{Skills: []string{"SQL", "Communication"}})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.Phases) == 0 {
		t.Fatal("plan has no phases")
	}
	found := false
	for _, phase := range plan.Phases {
		for _, sp := range phase.Skills {
			if sp.Skill == "Go" {
				found = true
				if len(sp.Courses) == 0 {
					t.Error("Go plan has no courses despite catalog entry")
				}
			}
		}
	}
	if !found {
		t.Error("missing required skill Go absent from plan")
	}
}

func TestBenchmarkDeterministicWithSeed(t *testing.T) {
	src := testSource(t)
	newRand := func() *rand.Rand { return rand.New(rand.NewSource(7)) }
	u := NewBenchmarkUsecase(src, newRand, 8)
	ctx := context.Background()
	in := SkillInput{Skills: []string{"Go", "SQL"}}

	first, err := u.Benchmark(ctx, "Backend Developer", in, 0)
	if err != nil {
		t.Fatalf("Benchmark: %v", err)
	}
	if first.SampleSize != 8 {
		t.Errorf("SampleSize = %d, want default 8", first.SampleSize)
	}

	second, err := u.Benchmark(ctx, "Backend Developer", in, 0)
	if err != nil {
		t.Fatalf("second Benchmark: %v", err)
	}
	if first.Experience.Mean != second.Experience.Mean {
		t.Errorf("seeded runs diverge: %.2f vs %.2f", first.Experience.Mean, second.Experience.Mean)
	}
}

func TestResumeAnalyze(t *testing.T) {
	u := NewResumeUsecase(testSource(t), newMemCache())

	text := "Senior engineer. Built REST API microservices in Golang; PostgreSQL and Docker in production."
	report, err := u.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := map[string]bool{"Go": true, "SQL": true, "Docker": true}
	for _, s := range report.ExtractedSkills {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Errorf("skills not extracted: %v (got %v)", want, report.ExtractedSkills)
	}

	if len(report.CareerFits) != 2 {
		t.Fatalf("CareerFits = %d, want 2 scorable careers", len(report.CareerFits))
	}
	if report.CareerFits[0].Career != "Backend Developer" {
		t.Errorf("best fit = %s, want Backend Developer", report.CareerFits[0].Career)
	}
	top := report.CareerFits[0]
	if top.KeywordMatchPct != 100.0 {
		t.Errorf("KeywordMatchPct = %.1f, want 100.0 with both keywords present", top.KeywordMatchPct)
	}
	if top.CombinedPct <= top.SkillMatchPct*0.7 {
		t.Errorf("CombinedPct %.1f not lifted by keyword share", top.CombinedPct)
	}
}

func TestResumeAnalyzeEmptyText(t *testing.T) {
	u := NewResumeUsecase(testSource(t), nil)
	if _, err := u.Analyze(context.Background(), "   \n\t "); !errors.Is(err, ErrEmptySkillProfile) {
		t.Fatalf("err = %v, want ErrEmptySkillProfile", err)
	}
}

func TestResumeAnalyzeNoKnownSkills(t *testing.T) {
	u := NewResumeUsecase(testSource(t), nil)
	report, err := u.Analyze(context.Background(), "Professional juggler and unicyclist.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(report.ExtractedSkills) != 0 {
		t.Errorf("extracted %v from unrelated text", report.ExtractedSkills)
	}
	for _, fit := range report.CareerFits {
		if fit.SkillMatchPct != 0 {
			t.Errorf("%s SkillMatchPct = %.1f, want 0", fit.Career, fit.SkillMatchPct)
		}
	}
}

func TestCareerListAndDetail(t *testing.T) {
	u := NewCareerUsecase(testSource(t))
	ctx := context.Background()

	list, err := u.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List = %d careers, want 3", len(list))
	}

	detail, err := u.Detail(ctx, "backend developer")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.TotalSkills != 5 || detail.RequiredSkills != 4 {
		t.Errorf("counts = %d/%d, want 5 total 4 required", detail.TotalSkills, detail.RequiredSkills)
	}
	if detail.BaseSalary != 90000 {
		t.Errorf("BaseSalary = %d", detail.BaseSalary)
	}

	if _, err := u.Detail(ctx, "nope"); !errors.Is(err, ErrCareerNotFound) {
		t.Errorf("err = %v, want ErrCareerNotFound", err)
	}
}
