package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/careers", h.List)
	r.Get("/careers/:career", h.Detail)
}

func (h *CareerHandler) List(c fiber.Ctx) error {
	careers, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.CareerListResponse{Careers: make([]dto.CareerSummaryResponse, 0, len(careers))}
	for _, cs := range careers {
		out.Careers = append(out.Careers, toCareerSummary(cs))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CareerHandler) Detail(c fiber.Ctx) error {
	detail, err := h.uc.Detail(c.Context(), careerParam(c))
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.CareerDetailResponse{
		CareerSummaryResponse: toCareerSummary(detail.CareerSummary),
		MinExperience:         detail.MinExperience,
		MaxExperience:         detail.MaxExperience,
		Requirements:          make([]dto.RequirementInfoResponse, 0, len(detail.Requirements)),
	}
	for _, req := range detail.Requirements {
		out.Requirements = append(out.Requirements, dto.RequirementInfoResponse{
			Skill:      req.Skill,
			Importance: req.Importance,
			Category:   string(req.Category),
			Weight:     req.Weight,
			IsRequired: req.IsRequired,
			Difficulty: string(req.Difficulty),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toCareerSummary(cs usecase.CareerSummary) dto.CareerSummaryResponse {
	return dto.CareerSummaryResponse{
		Name:           cs.Name,
		Description:    cs.Description,
		TotalSkills:    cs.TotalSkills,
		RequiredSkills: cs.RequiredSkills,
		BaseSalary:     cs.BaseSalary,
	}
}
