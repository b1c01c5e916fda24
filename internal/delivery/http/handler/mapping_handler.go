package handler

import (
	"context"

	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// RefreshFunc triggers a score refresh run in the background.
type RefreshFunc func(ctx context.Context)

type MappingHandler struct {
	uc      usecase.MappingUsecase
	refresh RefreshFunc
}

func NewMappingHandler(uc usecase.MappingUsecase, refresh RefreshFunc) *MappingHandler {
	return &MappingHandler{uc: uc, refresh: refresh}
}

func (h *MappingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/courses/:id/careers", h.CareersForCourse)
	r.Get("/careers/:id/courses", h.CoursesForCareer)
	r.Post("/mapping/refresh", h.Refresh)
}

func (h *MappingHandler) CareersForCourse(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	entries, err := h.uc.CareersForCourse(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}

func (h *MappingHandler) CoursesForCareer(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	entries, err := h.uc.CoursesForCareer(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}

func (h *MappingHandler) Refresh(c fiber.Ctx) error {
	if h.refresh == nil {
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	}
	go h.refresh(context.Background())
	return response.Success(c, fiber.StatusAccepted, "Score refresh started", nil)
}
