package catalog

import (
	"fmt"
	"sort"
	"strings"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, true
	case "intermediate":
		return DifficultyIntermediate, true
	case "advanced":
		return DifficultyAdvanced, true
	}
	return "", false
}

func (d Difficulty) PhaseIndex() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	}
	return 1
}

type Category string

const (
	CategoryCore         Category = "core"
	CategoryIntermediate Category = "intermediate"
	CategorySupporting   Category = "supporting"
	CategorySoft         Category = "soft"
)

// Categories is the fixed reporting order for per-category breakdowns.
var Categories = []Category{CategoryCore, CategoryIntermediate, CategorySupporting, CategorySoft}

type Requirement struct {
	Skill      string
	Importance int
	Category   Category
	Weight     float64
	IsRequired bool
	Difficulty Difficulty
}

type Keyword struct {
	Keyword    string
	Frequency  float64
	Importance int
}

// Market carries the per-career attributes the peer generator samples from.
type Market struct {
	BaseSalary    int
	MinExperience int
	MaxExperience int
}

type Career struct {
	Name         string
	Description  string
	Requirements []Requirement
	Keywords     []Keyword
	Market       Market
}

func (c *Career) RequiredImportanceSum() int {
	sum := 0
	for _, r := range c.Requirements {
		if r.IsRequired {
			sum += r.Importance
		}
	}
	return sum
}

func (c *Career) Scorable() bool {
	return c != nil && len(c.Requirements) > 0
}

type Course struct {
	Skill         string
	Name          string
	Level         Difficulty
	Platform      string
	DurationHours int
	Rating        float64
	Price         float64
	Certificate   bool
	URL           string
}

type courseKey struct {
	skill string
	level Difficulty
}

// Store is the immutable catalog snapshot shared across requests. It is
// built once at startup and never mutated afterwards, so concurrent
// readers need no locking.
type Store struct {
	careers    []*Career
	byName     map[string]*Career
	synonyms   map[string][]string
	skillNames []string

	courses        map[courseKey][]Course
	coursesBySkill map[string][]Course
}

func NewStore(careers []Career, synonyms map[string][]string, courses []Course) (*Store, error) {
	s := &Store{
		byName:         make(map[string]*Career, len(careers)),
		synonyms:       make(map[string][]string, len(synonyms)),
		courses:        make(map[courseKey][]Course),
		coursesBySkill: make(map[string][]Course),
	}

	for i := range careers {
		c := careers[i]
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("career %d: empty name", i)
		}
		key := strings.ToLower(name)
		if _, ok := s.byName[key]; ok {
			return nil, fmt.Errorf("duplicate career %q", name)
		}

		seen := make(map[string]struct{}, len(c.Requirements))
		for _, r := range c.Requirements {
			skill := strings.ToLower(strings.TrimSpace(r.Skill))
			if skill == "" {
				return nil, fmt.Errorf("career %q: requirement with empty skill", name)
			}
			if _, dup := seen[skill]; dup {
				return nil, fmt.Errorf("career %q: duplicate requirement %q", name, r.Skill)
			}
			seen[skill] = struct{}{}
			if r.Importance < 1 || r.Importance > 10 {
				return nil, fmt.Errorf("career %q: skill %q importance %d out of range", name, r.Skill, r.Importance)
			}
			if r.Weight <= 0 || r.Weight > 1 {
				return nil, fmt.Errorf("career %q: skill %q weight %v out of range", name, r.Skill, r.Weight)
			}
		}

		s.careers = append(s.careers, &c)
		s.byName[key] = &c
	}

	skillSet := map[string]string{}
	for canonical, aliases := range synonyms {
		key := strings.ToLower(strings.TrimSpace(canonical))
		if key == "" {
			continue
		}
		out := make([]string, 0, len(aliases))
		for _, a := range aliases {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" {
				out = append(out, a)
			}
		}
		s.synonyms[key] = out
	}
	for _, c := range s.careers {
		for _, r := range c.Requirements {
			skillSet[strings.ToLower(r.Skill)] = r.Skill
		}
	}
	for name := range s.synonyms {
		if _, ok := skillSet[name]; !ok {
			skillSet[name] = name
		}
	}
	for _, original := range skillSet {
		s.skillNames = append(s.skillNames, original)
	}
	sort.Strings(s.skillNames)

	for _, course := range courses {
		skill := strings.ToLower(strings.TrimSpace(course.Skill))
		if skill == "" {
			continue
		}
		k := courseKey{skill: skill, level: course.Level}
		s.courses[k] = append(s.courses[k], course)
		s.coursesBySkill[skill] = append(s.coursesBySkill[skill], course)
	}

	return s, nil
}

// Careers returns the catalog careers in load order.
func (s *Store) Careers() []*Career {
	out := make([]*Career, len(s.careers))
	copy(out, s.careers)
	return out
}

func (s *Store) Career(name string) (*Career, bool) {
	c, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// SynonymsFor returns the lowercase aliases registered for a skill. The
// skill's own name is always part of the result.
func (s *Store) SynonymsFor(skill string) []string {
	key := strings.ToLower(strings.TrimSpace(skill))
	if key == "" {
		return nil
	}
	out := []string{key}
	out = append(out, s.synonyms[key]...)
	return out
}

// SynonymTable exposes the canonical -> aliases mapping for iteration.
func (s *Store) SynonymTable() map[string][]string {
	return s.synonyms
}

// SkillNames lists every canonical skill known to the catalog, sorted.
func (s *Store) SkillNames() []string {
	out := make([]string, len(s.skillNames))
	copy(out, s.skillNames)
	return out
}

func (s *Store) CoursesFor(skill string, level Difficulty) []Course {
	k := courseKey{skill: strings.ToLower(strings.TrimSpace(skill)), level: level}
	src := s.courses[k]
	out := make([]Course, len(src))
	copy(out, src)
	return out
}

func (s *Store) CoursesForSkill(skill string) []Course {
	src := s.coursesBySkill[strings.ToLower(strings.TrimSpace(skill))]
	out := make([]Course, len(src))
	copy(out, src)
	return out
}
