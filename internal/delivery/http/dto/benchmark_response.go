package dto

type PeerResponse struct {
	ExperienceYears int      `json:"experience_years"`
	Education       string   `json:"education"`
	Salary          int      `json:"salary"`
	Skills          []string `json:"skills"`
}

type StatsResponse struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type BenchmarkResponse struct {
	Career     string         `json:"career"`
	SampleSize int            `json:"sample_size"`
	Peers      []PeerResponse `json:"peers"`

	Experience StatsResponse `json:"experience"`
	Salary     StatsResponse `json:"salary"`

	UserExperienceEst    float64 `json:"user_experience_est"`
	UserSalaryEst        int     `json:"user_salary_est"`
	ExperiencePercentile float64 `json:"experience_percentile"`
	SalaryPercentile     float64 `json:"salary_percentile"`

	SkillCoveragePct float64  `json:"skill_coverage_pct"`
	MissingCore      []string `json:"missing_core"`
	MissingEmerging  []string `json:"missing_emerging"`

	EducationDist map[string]int `json:"education_dist"`
}
