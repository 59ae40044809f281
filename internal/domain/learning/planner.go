package learning

import (
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/gap"
)

const (
	maxCoursesPerSkill  = 2
	maxOptionalSkills   = 3
	minPreferredRating  = 4.3
	reviewOverheadRatio = 1.2
)

// Phase names in plan order.
var phaseNames = [3]string{"Foundation", "Intermediate", "Advanced"}

// Policy configures plan construction. SoftSkillPhase pins well-known
// soft skills (lowercased) to a phase index regardless of catalog
// difficulty; soft skills not in the table land in DefaultSoftPhase.
type Policy struct {
	SoftSkillPhase   map[string]int
	DefaultSoftPhase int
}

func DefaultPolicy() Policy {
	return Policy{
		SoftSkillPhase: map[string]int{
			"communication":     0,
			"teamwork":          0,
			"problem solving":   1,
			"critical thinking": 1,
			"leadership":        2,
		},
		DefaultSoftPhase: 1,
	}
}

// CourseRef is a recommended course. LowRating marks picks below the
// preferred rating threshold that were attached anyway because nothing
// better existed for the skill.
type CourseRef struct {
	Name          string
	Platform      string
	Level         catalog.Difficulty
	DurationHours int
	Rating        float64
	Price         float64
	Certificate   bool
	URL           string
	LowRating     bool
}

type SkillPlan struct {
	Skill      string
	Importance int
	IsRequired bool
	Category   catalog.Category
	Difficulty catalog.Difficulty
	Courses    []CourseRef
}

type Phase struct {
	Name   string
	Index  int
	Skills []SkillPlan
}

type Timeline struct {
	TotalCourseHours int
	StudyHours       int
	WeeksAtCasual    int
	WeeksAtSteady    int
	WeeksAtIntense   int
}

type Plan struct {
	Career   string
	Phases   []Phase
	Timeline Timeline
}

// Build turns a gap analysis into a phased learning plan under the
// default policy: required missing skills across all phases plus the top
// optional ones, each with up to two course recommendations.
func Build(store *catalog.Store, analysis gap.Analysis) Plan {
	return BuildWith(store, analysis, DefaultPolicy())
}

// BuildWith is Build with a caller-supplied placement policy.
func BuildWith(store *catalog.Store, analysis gap.Analysis, pol Policy) Plan {
	plan := Plan{Career: analysis.Career}

	buckets := [3][]SkillPlan{}
	place := func(s gap.SkillStatus) {
		sp := SkillPlan{
			Skill:      s.Skill,
			Importance: s.Importance,
			IsRequired: s.IsRequired,
			Category:   s.Category,
			Difficulty: s.Difficulty,
			Courses:    pickCourses(store, s.Skill, s.Difficulty),
		}
		idx := phaseFor(s, pol)
		buckets[idx] = append(buckets[idx], sp)
	}

	for _, s := range analysis.RequiredMissing {
		place(s)
	}
	optional := analysis.OptionalMissing
	if len(optional) > maxOptionalSkills {
		optional = optional[:maxOptionalSkills]
	}
	for _, s := range optional {
		place(s)
	}

	total := 0
	for i, skills := range buckets {
		if len(skills) == 0 {
			continue
		}
		sort.SliceStable(skills, func(a, b int) bool {
			return skills[a].Importance > skills[b].Importance
		})
		plan.Phases = append(plan.Phases, Phase{Name: phaseNames[i], Index: i, Skills: skills})
		for _, sp := range skills {
			for _, c := range sp.Courses {
				total += c.DurationHours
			}
		}
	}

	study := int(float64(total) * reviewOverheadRatio)
	plan.Timeline = Timeline{
		TotalCourseHours: total,
		StudyHours:       study,
		WeeksAtCasual:    weeksAt(study, 10),
		WeeksAtSteady:    weeksAt(study, 15),
		WeeksAtIntense:   weeksAt(study, 20),
	}
	return plan
}

// phaseFor maps a missing skill to its plan phase. Soft skills follow the
// policy table; core-category skills move one phase earlier than their
// difficulty suggests so foundations come first.
func phaseFor(s gap.SkillStatus, pol Policy) int {
	if s.Category == catalog.CategorySoft {
		if idx, ok := pol.SoftSkillPhase[strings.ToLower(s.Skill)]; ok {
			return clampPhase(idx)
		}
		return clampPhase(pol.DefaultSoftPhase)
	}
	idx := s.Difficulty.PhaseIndex()
	if s.Category == catalog.CategoryCore && idx > 0 {
		idx--
	}
	return idx
}

func clampPhase(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > 2 {
		return 2
	}
	return idx
}

// pickCourses selects up to two courses for a skill at the given level,
// preferring well-rated ones. When nothing exists at that level the search
// widens to any level before giving up.
func pickCourses(store *catalog.Store, skill string, level catalog.Difficulty) []CourseRef {
	candidates := store.CoursesFor(skill, level)
	if len(candidates) == 0 {
		candidates = store.CoursesForSkill(skill)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	out := make([]CourseRef, 0, maxCoursesPerSkill)
	for _, c := range candidates {
		if len(out) == maxCoursesPerSkill {
			break
		}
		out = append(out, CourseRef{
			Name:          c.Name,
			Platform:      c.Platform,
			Level:         c.Level,
			DurationHours: c.DurationHours,
			Rating:        c.Rating,
			Price:         c.Price,
			Certificate:   c.Certificate,
			URL:           c.URL,
			LowRating:     c.Rating < minPreferredRating,
		})
	}
	return out
}

func weeksAt(studyHours, pace int) int {
	if pace <= 0 {
		return 0
	}
	weeks := studyHours / pace
	if studyHours%pace != 0 {
		weeks++
	}
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}
