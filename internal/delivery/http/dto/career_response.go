package dto

type CareerSummaryResponse struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalSkills    int    `json:"total_skills"`
	RequiredSkills int    `json:"required_skills"`
	BaseSalary     int    `json:"base_salary"`
}

type CareerDetailResponse struct {
	CareerSummaryResponse
	MinExperience int                       `json:"min_experience"`
	MaxExperience int                       `json:"max_experience"`
	Requirements  []RequirementInfoResponse `json:"requirements"`
}

type RequirementInfoResponse struct {
	Skill      string  `json:"skill"`
	Importance int     `json:"importance"`
	Category   string  `json:"category"`
	Weight     float64 `json:"weight"`
	IsRequired bool    `json:"is_required"`
	Difficulty string  `json:"difficulty"`
}

type CareerListResponse struct {
	Careers []CareerSummaryResponse `json:"careers"`
}
