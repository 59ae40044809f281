package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/learning"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LearningHandler struct {
	uc usecase.LearningUsecase
}

func NewLearningHandler(uc usecase.LearningUsecase) *LearningHandler {
	return &LearningHandler{uc: uc}
}

func (h *LearningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/careers/:career/learning-path", h.Plan)
}

func (h *LearningHandler) Plan(c fiber.Ctx) error {
	var req dto.SkillProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SkillInput{Skills: req.Skills, Text: req.Text}
	plan, err := h.uc.Plan(c.Context(), careerParam(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toPlanResponse(plan))
}

func toPlanResponse(p learning.Plan) dto.LearningPlanResponse {
	out := dto.LearningPlanResponse{
		Career: p.Career,
		Phases: make([]dto.PhaseResponse, 0, len(p.Phases)),
		Timeline: dto.TimelineResponse{
			TotalCourseHours: p.Timeline.TotalCourseHours,
			StudyHours:       p.Timeline.StudyHours,
			WeeksAtCasual:    p.Timeline.WeeksAtCasual,
			WeeksAtSteady:    p.Timeline.WeeksAtSteady,
			WeeksAtIntense:   p.Timeline.WeeksAtIntense,
		},
	}
	for _, phase := range p.Phases {
		pr := dto.PhaseResponse{
			Name:   phase.Name,
			Index:  phase.Index,
			Skills: make([]dto.SkillPlanResponse, 0, len(phase.Skills)),
		}
		for _, sp := range phase.Skills {
			courses := make([]dto.CourseResponse, 0, len(sp.Courses))
			for _, cr := range sp.Courses {
				courses = append(courses, dto.CourseResponse{
					Name:          cr.Name,
					Platform:      cr.Platform,
					Level:         string(cr.Level),
					DurationHours: cr.DurationHours,
					Rating:        cr.Rating,
					Price:         cr.Price,
					Certificate:   cr.Certificate,
					URL:           cr.URL,
					LowRating:     cr.LowRating,
				})
			}
			pr.Skills = append(pr.Skills, dto.SkillPlanResponse{
				Skill:      sp.Skill,
				Importance: sp.Importance,
				IsRequired: sp.IsRequired,
				Category:   string(sp.Category),
				Difficulty: string(sp.Difficulty),
				Courses:    courses,
			})
		}
		out.Phases = append(out.Phases, pr)
	}
	return out
}
