package handler

import (
	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type categoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type careerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type courseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.ListSkills)
	r.Get("/categories", h.ListCategories)
	r.Get("/careers", h.ListCareers)
	r.Get("/courses", h.ListCourses)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	res := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, skillResponse{
			ID:           s.ID,
			Name:         s.Name,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	res := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		res = append(res, categoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListCareers(c fiber.Ctx) error {
	careers, err := h.uc.ListCareers(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	res := make([]careerResponse, 0, len(careers))
	for _, career := range careers {
		res = append(res, careerResponse{ID: career.ID, Name: career.Name, Description: career.Description})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	courses, err := h.uc.ListCourses(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	res := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		res = append(res, courseResponse{ID: course.ID, Name: course.Name, Description: course.Description})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
