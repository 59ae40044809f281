package dto

type RequirementScoreResponse struct {
	Skill         string  `json:"skill"`
	Category      string  `json:"category"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Importance    int     `json:"importance"`
	IsRequired    bool    `json:"is_required"`
	Difficulty    string  `json:"difficulty"`
}

type CategoryCoverageResponse struct {
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
	Score   float64 `json:"score"`
}

type MatchBreakdownResponse struct {
	WeightedMatchPct float64 `json:"weighted_match_pct"`
	RequiredMatchPct float64 `json:"required_match_pct"`

	CategoryScores    map[string]CategoryCoverageResponse   `json:"category_scores"`
	MatchedByCategory map[string][]RequirementScoreResponse `json:"matched_by_category"`
	MissingByCategory map[string][]RequirementScoreResponse `json:"missing_by_category"`
	RequiredMissing   map[string][]RequirementScoreResponse `json:"required_missing"`

	ExactMatches    int `json:"exact_matches"`
	RequiredMatches int `json:"required_matches"`
	TotalSkills     int `json:"total_skills"`
	TotalRequired   int `json:"total_required"`
}

type MatchResponse struct {
	Career     string                 `json:"career"`
	Score      float64                `json:"score"`
	BaseScore  float64                `json:"base_score"`
	BonusScore float64                `json:"bonus_score"`
	Semantic   float64                `json:"semantic"`
	Breakdown  MatchBreakdownResponse `json:"breakdown"`
}

type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}
