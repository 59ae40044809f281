package gap

import (
	"testing"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
)

func fixtureStore(t *testing.T) *catalog.Store {
	t.Helper()
	careers := []catalog.Career{
		{
			Name:        "Data Engineer",
			Description: "data pipelines and warehousing",
			Requirements: []catalog.Requirement{
				{Skill: "Python", Importance: 10, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
				{Skill: "SQL", Importance: 10, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Spark", Importance: 9, Category: catalog.CategoryIntermediate, Weight: 0.9, IsRequired: true, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Airflow", Importance: 7, Category: catalog.CategoryIntermediate, Weight: 0.7, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Kafka", Importance: 9, Category: catalog.CategoryIntermediate, Weight: 0.9, IsRequired: true, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Docker", Importance: 6, Category: catalog.CategorySupporting, Weight: 0.6, IsRequired: false, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Terraform", Importance: 5, Category: catalog.CategorySupporting, Weight: 0.5, IsRequired: false, Difficulty: catalog.DifficultyIntermediate},
			},
		},
	}
	synonyms := map[string][]string{
		"Python": {"py"},
		"Kafka":  {"apache kafka"},
	}
	s, err := catalog.NewStore(careers, synonyms, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func analyzeWith(t *testing.T, store *catalog.Store, skills ...string) Analysis {
	t.Helper()
	career, ok := store.Career("Data Engineer")
	if !ok {
		t.Fatal("fixture career missing")
	}
	n := normalize.New(store)
	return Analyze(store, career, n.Expand(normalize.ParseList(skills)))
}

func TestAnalyzeImportanceWeightedCompletion(t *testing.T) {
	// Required importance: 10+10+9+7+9 = 45. Covered: Python, SQL, Kafka,
	// Spark = 10+10+9+9 = 38.
	a := analyzeWith(t, fixtureStore(t), "Python", "SQL", "apache kafka", "Spark")

	if want := 84.4; a.CompletionPct != want {
		t.Errorf("CompletionPct = %v, want %v", a.CompletionPct, want)
	}
	if want := 80.0; a.RequiredCompletionPct != want {
		t.Errorf("RequiredCompletionPct = %v, want %v", a.RequiredCompletionPct, want)
	}
	if a.OptionalCoveragePct != 0 {
		t.Errorf("OptionalCoveragePct = %v, want 0", a.OptionalCoveragePct)
	}
}

func TestAnalyzeCountsAddUp(t *testing.T) {
	a := analyzeWith(t, fixtureStore(t), "Python", "Docker")

	if a.RequiredCovered+len(a.RequiredMissing) != a.TotalRequired {
		t.Errorf("required covered %d + missing %d != total %d",
			a.RequiredCovered, len(a.RequiredMissing), a.TotalRequired)
	}
	if a.OptionalCovered+len(a.OptionalMissing) != a.TotalOptional {
		t.Errorf("optional covered %d + missing %d != total %d",
			a.OptionalCovered, len(a.OptionalMissing), a.TotalOptional)
	}
	if a.SkillsCovered != 2 {
		t.Errorf("SkillsCovered = %d, want 2", a.SkillsCovered)
	}
	if a.RequiredMissingCount != 4 || a.OptionalMissingCount != 1 {
		t.Errorf("missing counts = (%d, %d), want (4, 1)",
			a.RequiredMissingCount, a.OptionalMissingCount)
	}
}

func TestAnalyzeMissingSortedByImportance(t *testing.T) {
	a := analyzeWith(t, fixtureStore(t), "Python")

	for i := 1; i < len(a.RequiredMissing); i++ {
		if a.RequiredMissing[i-1].Importance < a.RequiredMissing[i].Importance {
			t.Fatalf("RequiredMissing not sorted: %v", a.RequiredMissing)
		}
	}
	if a.RequiredMissing[0].Importance != 10 {
		t.Errorf("top missing importance = %d, want 10", a.RequiredMissing[0].Importance)
	}
}

func TestAnalyzeExplicitLevelOverridesCatalog(t *testing.T) {
	a := analyzeWith(t, fixtureStore(t), "SQL - Advanced", "Python")

	var sql *SkillStatus
	for i := range a.UserHas {
		if a.UserHas[i].Skill == "SQL" {
			sql = &a.UserHas[i]
		}
	}
	if sql == nil {
		t.Fatal("SQL missing from UserHas")
	}
	if sql.Difficulty != catalog.DifficultyAdvanced {
		t.Errorf("SQL difficulty = %q, want Advanced override", sql.Difficulty)
	}

	for _, s := range a.UserHas {
		if s.Skill == "Python" && s.Difficulty != catalog.DifficultyBeginner {
			t.Errorf("Python difficulty = %q, want catalog Beginner", s.Difficulty)
		}
	}
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	a := analyzeWith(t, fixtureStore(t))

	if a.CompletionPct != 0 || a.SkillsCovered != 0 {
		t.Errorf("empty profile: completion %v, covered %d", a.CompletionPct, a.SkillsCovered)
	}
	if len(a.RequiredMissing) != a.TotalRequired {
		t.Errorf("all required should be missing: %d vs %d", len(a.RequiredMissing), a.TotalRequired)
	}
}
