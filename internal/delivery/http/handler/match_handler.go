package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/scoring"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.TopMatches)
	r.Post("/careers/:career/match", h.MatchCareer)
}

func (h *MatchHandler) TopMatches(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SkillInput{Skills: req.Skills, Text: req.Text}
	results, err := h.uc.TopMatches(c.Context(), in, req.TopN)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.MatchListResponse{Matches: make([]dto.MatchResponse, 0, len(results))}
	for _, res := range results {
		out.Matches = append(out.Matches, toMatchResponse(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) MatchCareer(c fiber.Ctx) error {
	var req dto.SkillProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SkillInput{Skills: req.Skills, Text: req.Text}
	res, err := h.uc.MatchCareer(c.Context(), careerParam(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchResponse(res))
}

func toMatchResponse(res scoring.Result) dto.MatchResponse {
	return dto.MatchResponse{
		Career:     res.Career,
		Score:      res.Score,
		BaseScore:  res.BaseScore,
		BonusScore: res.BonusScore,
		Semantic:   res.Semantic,
		Breakdown:  toBreakdownResponse(res.Breakdown),
	}
}

func toBreakdownResponse(b scoring.Breakdown) dto.MatchBreakdownResponse {
	out := dto.MatchBreakdownResponse{
		WeightedMatchPct:  b.WeightedMatchPct,
		RequiredMatchPct:  b.RequiredMatchPct,
		CategoryScores:    make(map[string]dto.CategoryCoverageResponse, len(b.CategoryScores)),
		MatchedByCategory: toRequirementMap(b.MatchedByCategory),
		MissingByCategory: toRequirementMap(b.MissingByCategory),
		RequiredMissing:   toRequirementMap(b.RequiredMissing),
		ExactMatches:      b.ExactMatches,
		RequiredMatches:   b.RequiredMatches,
		TotalSkills:       b.TotalSkills,
		TotalRequired:     b.TotalRequired,
	}
	for cat, cov := range b.CategoryScores {
		out.CategoryScores[string(cat)] = dto.CategoryCoverageResponse{
			Matched: cov.Matched,
			Total:   cov.Total,
			Score:   cov.Score,
		}
	}
	return out
}

func toRequirementMap(in map[catalog.Category][]scoring.RequirementScore) map[string][]dto.RequirementScoreResponse {
	out := make(map[string][]dto.RequirementScoreResponse, len(in))
	for cat, items := range in {
		mapped := make([]dto.RequirementScoreResponse, 0, len(items))
		for _, rs := range items {
			mapped = append(mapped, dto.RequirementScoreResponse{
				Skill:         rs.Skill,
				Category:      string(rs.Category),
				Weight:        rs.Weight,
				WeightedScore: rs.WeightedScore,
				Importance:    rs.Importance,
				IsRequired:    rs.IsRequired,
				Difficulty:    string(rs.Difficulty),
			})
		}
		out[string(cat)] = mapped
	}
	return out
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCareerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career not found", nil, err)
	case errors.Is(err, usecase.ErrEmptySkillProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill profile empty", nil, err)
	case errors.Is(err, usecase.ErrUnscorable):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Career has no scorable requirements", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
