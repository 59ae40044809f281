package dto

type CourseResponse struct {
	Name          string  `json:"name"`
	Platform      string  `json:"platform"`
	Level         string  `json:"level"`
	DurationHours int     `json:"duration_hours"`
	Rating        float64 `json:"rating"`
	Price         float64 `json:"price"`
	Certificate   bool    `json:"certificate"`
	URL           string  `json:"url,omitempty"`
	LowRating     bool    `json:"low_rating,omitempty"`
}

type SkillPlanResponse struct {
	Skill      string           `json:"skill"`
	Importance int              `json:"importance"`
	IsRequired bool             `json:"is_required"`
	Category   string           `json:"category"`
	Difficulty string           `json:"difficulty"`
	Courses    []CourseResponse `json:"courses"`
}

type PhaseResponse struct {
	Name   string              `json:"name"`
	Index  int                 `json:"index"`
	Skills []SkillPlanResponse `json:"skills"`
}

type TimelineResponse struct {
	TotalCourseHours int `json:"total_course_hours"`
	StudyHours       int `json:"study_hours"`
	WeeksAtCasual    int `json:"weeks_at_casual"`
	WeeksAtSteady    int `json:"weeks_at_steady"`
	WeeksAtIntense   int `json:"weeks_at_intense"`
}

type LearningPlanResponse struct {
	Career   string           `json:"career"`
	Phases   []PhaseResponse  `json:"phases"`
	Timeline TimelineResponse `json:"timeline"`
}
