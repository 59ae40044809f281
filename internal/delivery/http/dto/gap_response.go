package dto

type SkillStatusResponse struct {
	Skill      string `json:"skill"`
	Difficulty string `json:"difficulty"`
	Importance int    `json:"importance"`
	IsRequired bool   `json:"is_required"`
	Category   string `json:"category"`
}

type GapAnalysisResponse struct {
	Career string `json:"career"`

	CompletionPct         float64 `json:"completion_pct"`
	RequiredCompletionPct float64 `json:"required_completion_pct"`
	OptionalCoveragePct   float64 `json:"optional_coverage_pct"`

	UserHas         []SkillStatusResponse `json:"user_has"`
	RequiredMissing []SkillStatusResponse `json:"required_missing"`
	OptionalMissing []SkillStatusResponse `json:"optional_missing"`

	TotalSkills   int `json:"total_skills"`
	SkillsCovered int `json:"skills_covered"`

	TotalRequired   int `json:"total_required"`
	TotalOptional   int `json:"total_optional"`
	RequiredCovered int `json:"required_covered"`
	OptionalCovered int `json:"optional_covered"`

	RequiredMissingCount int `json:"required_missing_count"`
	OptionalMissingCount int `json:"optional_missing_count"`
}
