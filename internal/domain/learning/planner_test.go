package learning

import (
	"testing"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/normalize"
)

func fixtureStore(t *testing.T) *catalog.Store {
	t.Helper()
	careers := []catalog.Career{
		{
			Name:        "ML Engineer",
			Description: "production machine learning systems",
			Requirements: []catalog.Requirement{
				{Skill: "Python", Importance: 10, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Machine Learning", Importance: 10, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Docker", Importance: 7, Category: catalog.CategorySupporting, Weight: 0.7, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Communication", Importance: 6, Category: catalog.CategorySoft, Weight: 0.6, IsRequired: true, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Leadership", Importance: 5, Category: catalog.CategorySoft, Weight: 0.5, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
				{Skill: "Kubernetes", Importance: 6, Category: catalog.CategorySupporting, Weight: 0.6, IsRequired: false, Difficulty: catalog.DifficultyAdvanced},
				{Skill: "Airflow", Importance: 5, Category: catalog.CategorySupporting, Weight: 0.5, IsRequired: false, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Terraform", Importance: 4, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Spark", Importance: 3, Category: catalog.CategorySupporting, Weight: 0.4, IsRequired: false, Difficulty: catalog.DifficultyAdvanced},
			},
		},
	}
	courses := []catalog.Course{
		{Skill: "Python", Name: "Python Deep Dive", Level: catalog.DifficultyIntermediate, Platform: "Udemy", DurationHours: 30, Rating: 4.6},
		{Skill: "Python", Name: "Python Projects", Level: catalog.DifficultyIntermediate, Platform: "Coursera", DurationHours: 25, Rating: 4.4},
		{Skill: "Python", Name: "Python Crash", Level: catalog.DifficultyIntermediate, Platform: "YouTube", DurationHours: 10, Rating: 4.8},
		{Skill: "Machine Learning", Name: "ML Specialization", Level: catalog.DifficultyAdvanced, Platform: "Coursera", DurationHours: 60, Rating: 4.9},
		{Skill: "Docker", Name: "Docker Fundamentals", Level: catalog.DifficultyBeginner, Platform: "Udemy", DurationHours: 12, Rating: 4.5},
		{Skill: "Communication", Name: "Effective Communication", Level: catalog.DifficultyBeginner, Platform: "LinkedIn", DurationHours: 4, Rating: 3.9},
	}
	s, err := catalog.NewStore(careers, nil, courses)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func planFor(t *testing.T, store *catalog.Store, skills ...string) Plan {
	t.Helper()
	career, _ := store.Career("ML Engineer")
	n := normalize.New(store)
	return Build(store, gap.Analyze(store, career, n.Expand(normalize.ParseList(skills))))
}

func phaseByIndex(p Plan, idx int) *Phase {
	for i := range p.Phases {
		if p.Phases[i].Index == idx {
			return &p.Phases[i]
		}
	}
	return nil
}

func skillInPhase(ph *Phase, name string) bool {
	if ph == nil {
		return false
	}
	for _, s := range ph.Skills {
		if s.Skill == name {
			return true
		}
	}
	return false
}

func TestBuildCorePromotion(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	// Core skills move one phase earlier than their difficulty suggests.
	if !skillInPhase(phaseByIndex(p, 0), "Python") {
		t.Error("intermediate core skill should land in Foundation")
	}
	if !skillInPhase(phaseByIndex(p, 1), "Machine Learning") {
		t.Error("advanced core skill should land in Intermediate")
	}
	// Supporting skills stay at their difficulty.
	if !skillInPhase(phaseByIndex(p, 1), "Docker") {
		t.Error("intermediate supporting skill should land in Intermediate")
	}
}

func TestBuildSoftSkillPolicy(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	if !skillInPhase(phaseByIndex(p, 0), "Communication") {
		t.Error("Communication belongs in Foundation regardless of difficulty")
	}
	if !skillInPhase(phaseByIndex(p, 2), "Leadership") {
		t.Error("Leadership belongs in Advanced regardless of difficulty")
	}
}

func TestBuildWithCustomPolicy(t *testing.T) {
	store := fixtureStore(t)
	career, _ := store.Career("ML Engineer")
	n := normalize.New(store)
	analysis := gap.Analyze(store, career, n.Expand(normalize.ParseList(nil)))

	pol := Policy{
		SoftSkillPhase:   map[string]int{"communication": 2},
		DefaultSoftPhase: 0,
	}
	p := BuildWith(store, analysis, pol)

	if !skillInPhase(phaseByIndex(p, 2), "Communication") {
		t.Error("policy should move Communication to Advanced")
	}
	// Leadership is absent from the custom table and follows the default.
	if !skillInPhase(phaseByIndex(p, 0), "Leadership") {
		t.Error("unlisted soft skill should land in DefaultSoftPhase")
	}
}

func TestBuildWithPolicyClampsPhases(t *testing.T) {
	store := fixtureStore(t)
	career, _ := store.Career("ML Engineer")
	n := normalize.New(store)
	analysis := gap.Analyze(store, career, n.Expand(normalize.ParseList(nil)))

	pol := Policy{
		SoftSkillPhase:   map[string]int{"communication": 7, "leadership": -3},
		DefaultSoftPhase: 1,
	}
	p := BuildWith(store, analysis, pol)

	if !skillInPhase(phaseByIndex(p, 2), "Communication") {
		t.Error("out-of-range phase should clamp to Advanced")
	}
	if !skillInPhase(phaseByIndex(p, 0), "Leadership") {
		t.Error("negative phase should clamp to Foundation")
	}
}

func TestBuildOptionalLimit(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	optional := 0
	for _, ph := range p.Phases {
		for _, s := range ph.Skills {
			if !s.IsRequired {
				optional++
			}
		}
	}
	if optional != maxOptionalSkills {
		t.Errorf("optional skills in plan = %d, want %d", optional, maxOptionalSkills)
	}
	// The cut keeps the highest-importance optionals.
	for _, ph := range p.Phases {
		if skillInPhase(&ph, "Spark") {
			t.Error("lowest-importance optional should have been cut")
		}
	}
}

func TestBuildLowRatingFlagged(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	for _, ph := range p.Phases {
		for _, s := range ph.Skills {
			if s.Skill != "Communication" {
				continue
			}
			if len(s.Courses) == 0 {
				t.Fatal("Communication should still get its only course")
			}
			if !s.Courses[0].LowRating {
				t.Error("below-threshold course should be flagged")
			}
		}
	}
}

func TestBuildCourseFallbackAcrossLevels(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	// Docker has only a Beginner course while the requirement is
	// Intermediate; the pick must widen instead of returning nothing.
	found := false
	for _, ph := range p.Phases {
		for _, s := range ph.Skills {
			if s.Skill == "Docker" {
				found = true
				if len(s.Courses) != 1 || s.Courses[0].Name != "Docker Fundamentals" {
					t.Errorf("Docker courses = %v", s.Courses)
				}
			}
		}
	}
	if !found {
		t.Fatal("Docker missing from plan")
	}
}

func TestBuildCoursesCappedAndRanked(t *testing.T) {
	p := planFor(t, fixtureStore(t))

	for _, ph := range p.Phases {
		for _, s := range ph.Skills {
			if s.Skill != "Python" {
				continue
			}
			if len(s.Courses) != maxCoursesPerSkill {
				t.Fatalf("Python courses = %d, want %d", len(s.Courses), maxCoursesPerSkill)
			}
			if s.Courses[0].Rating < s.Courses[1].Rating {
				t.Error("courses should be ranked by rating")
			}
		}
	}
}

func TestBuildEmptyPhasesOmitted(t *testing.T) {
	store := fixtureStore(t)
	p := planFor(t, store, "Machine Learning", "Docker", "Communication", "Leadership",
		"Kubernetes", "Airflow", "Terraform", "Spark")

	// Only Python is missing, so only Foundation survives.
	if len(p.Phases) != 1 || p.Phases[0].Index != 0 {
		t.Fatalf("phases = %+v, want only Foundation", p.Phases)
	}
}

func TestTimelineBufferAndFloor(t *testing.T) {
	store := fixtureStore(t)
	p := planFor(t, store, "Python", "Machine Learning", "Docker", "Leadership",
		"Kubernetes", "Airflow", "Terraform", "Spark")

	// Only Communication is missing: 4 course hours → 4 study hours after
	// the buffer truncates to int.
	if p.Timeline.TotalCourseHours != 4 {
		t.Fatalf("TotalCourseHours = %d, want 4", p.Timeline.TotalCourseHours)
	}
	if p.Timeline.StudyHours != 4 {
		t.Errorf("StudyHours = %d, want 4", p.Timeline.StudyHours)
	}
	for _, weeks := range []int{p.Timeline.WeeksAtCasual, p.Timeline.WeeksAtSteady, p.Timeline.WeeksAtIntense} {
		if weeks < 1 {
			t.Errorf("weeks %d under the 1-week floor", weeks)
		}
	}
}
