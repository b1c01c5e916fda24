package handler

import (
	"time"

	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PostingHandler struct {
	uc usecase.PostingUsecase
}

func NewPostingHandler(uc usecase.PostingUsecase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

type createPostingRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CareerID    *uuid.UUID `json:"careerId"`
}

type confirmSkillRequest struct {
	Name       string     `json:"name"`
	SkillID    *uuid.UUID `json:"skillId"`
	CategoryID *uuid.UUID `json:"categoryId"`
}

type confirmPostingRequest struct {
	Skills []confirmSkillRequest `json:"skills"`
}

type postingResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CareerID    *uuid.UUID `json:"careerId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type postingDetailResponse struct {
	postingResponse
	Skills []skillResponse `json:"skills"`
}

type skillResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

type previewCandidateResponse struct {
	Name         string     `json:"name"`
	SkillID      *uuid.UUID `json:"skillId"`
	CategoryID   uuid.UUID  `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
}

type confirmResultResponse struct {
	CreatedSkillNames         []string `json:"createdSkillNames"`
	AlreadyExistingSkillNames []string `json:"alreadyExistingSkillNames"`
}

func (h *PostingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/postings")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/preview", h.Preview)
	grp.Post("/:id/confirm", h.Confirm)
	grp.Delete("/:id", h.Delete)
	grp.Delete("/:id/skills/:skillId", h.UnlinkSkill)
}

func (h *PostingHandler) Create(c fiber.Ctx) error {
	var req createPostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), req.Title, req.Description, req.CareerID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Posting created successfully", toPostingResponse(created))
}

func (h *PostingHandler) List(c fiber.Ctx) error {
	postings, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	res := make([]postingResponse, 0, len(postings))
	for _, p := range postings {
		res = append(res, toPostingResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PostingHandler) Get(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	res := postingDetailResponse{
		postingResponse: toPostingResponse(detail.PostingItem),
		Skills:          make([]skillResponse, 0, len(detail.Skills)),
	}
	for _, s := range detail.Skills {
		res.Skills = append(res.Skills, skillResponse{
			ID:           s.ID,
			Name:         s.Name,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PostingHandler) Preview(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	candidates, err := h.uc.Preview(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	res := make([]previewCandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		res = append(res, previewCandidateResponse{
			Name:         cand.Name,
			SkillID:      cand.SkillID,
			CategoryID:   cand.CategoryID,
			CategoryName: cand.CategoryName,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PostingHandler) Confirm(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req confirmPostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	skills := make([]usecase.ConfirmSkill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, usecase.ConfirmSkill{
			Name:       s.Name,
			SkillID:    s.SkillID,
			CategoryID: s.CategoryID,
		})
	}

	result, err := h.uc.Confirm(c.Context(), id, skills)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Posting skills confirmed", confirmResultResponse{
		CreatedSkillNames:         result.CreatedSkillNames,
		AlreadyExistingSkillNames: result.AlreadyExistingSkillNames,
	})
}

func (h *PostingHandler) Delete(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Posting deleted successfully", nil)
}

func (h *PostingHandler) UnlinkSkill(c fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	skillID, ok := parseUUIDParam(c, "skillId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.UnlinkSkill(c.Context(), id, skillID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Skill unlinked from posting", nil)
}

func toPostingResponse(p usecase.PostingItem) postingResponse {
	return postingResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CareerID:    p.CareerID,
		CreatedAt:   p.CreatedAt,
	}
}
