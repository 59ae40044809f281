package dto

// SkillProfileRequest carries the user's skills: an explicit list with
// optional "Skill - Level" annotations, free text, or both.
type SkillProfileRequest struct {
	Skills []string `json:"skills"`
	Text   string   `json:"text"`
}

type MatchRequest struct {
	SkillProfileRequest
	TopN int `json:"top_n"`
}

type BenchmarkRequest struct {
	SkillProfileRequest
	SampleSize int `json:"sample_size"`
}

type ResumeRequest struct {
	Text string `json:"text"`
}
