package dto

type CareerFitResponse struct {
	Career          string  `json:"career"`
	SkillMatchPct   float64 `json:"skill_match_pct"`
	KeywordMatchPct float64 `json:"keyword_match_pct"`
	CombinedPct     float64 `json:"combined_pct"`
}

type ResumeAnalysisResponse struct {
	ExtractedSkills []string            `json:"extracted_skills"`
	CareerFits      []CareerFitResponse `json:"career_fits"`
}

type RefreshResponse struct {
	Source         string `json:"source"`
	CoursesSeen    int    `json:"courses_seen"`
	CoursesWritten int    `json:"courses_written"`
}
