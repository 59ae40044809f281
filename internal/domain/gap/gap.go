package gap

import (
	"sort"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/scoring"
)

// SkillStatus is one requirement from the user's point of view. For covered
// skills Difficulty carries the user's explicit proficiency when they
// declared one, otherwise the catalog difficulty.
type SkillStatus struct {
	Skill      string
	Difficulty catalog.Difficulty
	Importance int
	IsRequired bool
	Category   catalog.Category
}

type Analysis struct {
	Career string

	// CompletionPct is importance-weighted over required requirements;
	// RequiredCompletionPct is the count-based ratio. They answer different
	// questions and are both reported.
	CompletionPct         float64
	RequiredCompletionPct float64
	OptionalCoveragePct   float64

	UserHas         []SkillStatus
	RequiredMissing []SkillStatus
	OptionalMissing []SkillStatus

	TotalSkills   int
	SkillsCovered int

	TotalRequired   int
	TotalOptional   int
	RequiredCovered int
	OptionalCovered int

	TotalRequiredImportance int
	UserRequiredImportance  int

	RequiredMissingCount int
	OptionalMissingCount int
}

// Analyze partitions a career's requirements into covered and missing
// against the user's expanded skill profile. A requirement counts as
// covered when any synonym of its skill appears in the profile.
func Analyze(store *catalog.Store, career *catalog.Career, profile normalize.Profile) Analysis {
	a := Analysis{Career: career.Name, TotalSkills: len(career.Requirements)}

	for _, r := range career.Requirements {
		if r.IsRequired {
			a.TotalRequired++
			a.TotalRequiredImportance += r.Importance
		} else {
			a.TotalOptional++
		}

		entry, ok := profile.Has(store, r.Skill)
		if ok {
			level := r.Difficulty
			if entry.Level != "" {
				level = entry.Level
			}
			a.UserHas = append(a.UserHas, SkillStatus{
				Skill:      r.Skill,
				Difficulty: level,
				Importance: r.Importance,
				IsRequired: r.IsRequired,
				Category:   r.Category,
			})
			if r.IsRequired {
				a.RequiredCovered++
				a.UserRequiredImportance += r.Importance
			} else {
				a.OptionalCovered++
			}
			continue
		}

		miss := SkillStatus{
			Skill:      r.Skill,
			Difficulty: r.Difficulty,
			Importance: r.Importance,
			IsRequired: r.IsRequired,
			Category:   r.Category,
		}
		if r.IsRequired {
			a.RequiredMissing = append(a.RequiredMissing, miss)
		} else {
			a.OptionalMissing = append(a.OptionalMissing, miss)
		}
	}

	a.SkillsCovered = len(a.UserHas)

	if a.TotalRequiredImportance > 0 {
		a.CompletionPct = scoring.Round1(float64(a.UserRequiredImportance) / float64(a.TotalRequiredImportance) * 100)
	}
	if a.TotalRequired > 0 {
		a.RequiredCompletionPct = scoring.Round1(float64(a.RequiredCovered) / float64(a.TotalRequired) * 100)
	}
	if a.TotalOptional > 0 {
		a.OptionalCoveragePct = scoring.Round1(float64(a.OptionalCovered) / float64(a.TotalOptional) * 100)
	}

	a.RequiredMissingCount = clampNonNegative(a.TotalRequired - a.RequiredCovered)
	a.OptionalMissingCount = clampNonNegative(a.TotalOptional - a.OptionalCovered)

	sortByImportanceDesc(a.RequiredMissing)
	sortByImportanceDesc(a.OptionalMissing)
	return a
}

func sortByImportanceDesc(items []SkillStatus) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Importance > items[j].Importance
	})
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
