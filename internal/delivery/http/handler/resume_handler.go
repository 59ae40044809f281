package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resume/analyze", h.Analyze)
}

func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.uc.Analyze(c.Context(), req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ResumeAnalysisResponse{
		ExtractedSkills: report.ExtractedSkills,
		CareerFits:      make([]dto.CareerFitResponse, 0, len(report.CareerFits)),
	}
	for _, fit := range report.CareerFits {
		out.CareerFits = append(out.CareerFits, dto.CareerFitResponse{
			Career:          fit.Career,
			SkillMatchPct:   fit.SkillMatchPct,
			KeywordMatchPct: fit.KeywordMatchPct,
			CombinedPct:     fit.CombinedPct,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
