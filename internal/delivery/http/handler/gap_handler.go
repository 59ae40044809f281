package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/gap"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/careers/:career/gap", h.Analyze)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	var req dto.SkillProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SkillInput{Skills: req.Skills, Text: req.Text}
	a, err := h.uc.Analyze(c.Context(), careerParam(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toGapResponse(a))
}

func toGapResponse(a gap.Analysis) dto.GapAnalysisResponse {
	return dto.GapAnalysisResponse{
		Career:                a.Career,
		CompletionPct:         a.CompletionPct,
		RequiredCompletionPct: a.RequiredCompletionPct,
		OptionalCoveragePct:   a.OptionalCoveragePct,
		UserHas:               toSkillStatuses(a.UserHas),
		RequiredMissing:       toSkillStatuses(a.RequiredMissing),
		OptionalMissing:       toSkillStatuses(a.OptionalMissing),
		TotalSkills:           a.TotalSkills,
		SkillsCovered:         a.SkillsCovered,
		TotalRequired:         a.TotalRequired,
		TotalOptional:         a.TotalOptional,
		RequiredCovered:       a.RequiredCovered,
		OptionalCovered:       a.OptionalCovered,
		RequiredMissingCount:  a.RequiredMissingCount,
		OptionalMissingCount:  a.OptionalMissingCount,
	}
}

func toSkillStatuses(items []gap.SkillStatus) []dto.SkillStatusResponse {
	out := make([]dto.SkillStatusResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SkillStatusResponse{
			Skill:      s.Skill,
			Difficulty: string(s.Difficulty),
			Importance: s.Importance,
			IsRequired: s.IsRequired,
			Category:   string(s.Category),
		})
	}
	return out
}
