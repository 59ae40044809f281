package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	refresh usecase.RefreshUsecase
}

func NewAdminHandler(refresh usecase.RefreshUsecase) *AdminHandler {
	return &AdminHandler{refresh: refresh}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/courses/refresh", h.RefreshCourses)
}

func (h *AdminHandler) RefreshCourses(c fiber.Ctx) error {
	report, err := h.refresh.RefreshCourses(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RefreshResponse{
		Source:         report.Source,
		CoursesSeen:    report.CoursesSeen,
		CoursesWritten: report.CoursesWritten,
	})
}
