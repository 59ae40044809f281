package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/peers"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BenchmarkHandler struct {
	uc usecase.BenchmarkUsecase
}

func NewBenchmarkHandler(uc usecase.BenchmarkUsecase) *BenchmarkHandler {
	return &BenchmarkHandler{uc: uc}
}

func (h *BenchmarkHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/careers/:career/benchmark", h.Benchmark)
}

func (h *BenchmarkHandler) Benchmark(c fiber.Ctx) error {
	var req dto.BenchmarkRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SkillInput{Skills: req.Skills, Text: req.Text}
	report, err := h.uc.Benchmark(c.Context(), careerParam(c), in, req.SampleSize)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toBenchmarkResponse(report))
}

func toBenchmarkResponse(r peers.Report) dto.BenchmarkResponse {
	out := dto.BenchmarkResponse{
		Career:               r.Career,
		SampleSize:           r.SampleSize,
		Peers:                make([]dto.PeerResponse, 0, len(r.Peers)),
		Experience:           toStatsResponse(r.Experience),
		Salary:               toStatsResponse(r.Salary),
		UserExperienceEst:    r.UserExperienceEst,
		UserSalaryEst:        r.UserSalaryEst,
		ExperiencePercentile: r.ExperiencePercentile,
		SalaryPercentile:     r.SalaryPercentile,
		SkillCoveragePct:     r.SkillCoveragePct,
		MissingCore:          r.MissingCore,
		MissingEmerging:      r.MissingEmerging,
		EducationDist:        r.EducationDist,
	}
	for _, p := range r.Peers {
		out.Peers = append(out.Peers, dto.PeerResponse{
			ExperienceYears: p.ExperienceYears,
			Education:       p.Education,
			Salary:          p.Salary,
			Skills:          p.Skills,
		})
	}
	return out
}

func toStatsResponse(s peers.Stats) dto.StatsResponse {
	return dto.StatsResponse{Mean: s.Mean, Median: s.Median, Min: s.Min, Max: s.Max}
}
