package handler

import (
	"skill-bridge/internal/domain/compat"
	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompatHandler struct {
	uc usecase.CompatUsecase
}

func NewCompatHandler(uc usecase.CompatUsecase) *CompatHandler {
	return &CompatHandler{uc: uc}
}

type compatResponse struct {
	CareerID        uuid.UUID `json:"careerId"`
	CareerName      string    `json:"careerName"`
	Percentage      float64   `json:"percentage"`
	CoveredWeight   int       `json:"coveredWeight"`
	TotalConsidered int       `json:"totalConsidered"`
	CoveredSkills   []string  `json:"coveredSkills"`
}

func (h *CompatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users/:userId/compatibility")
	grp.Get("/", h.ScoreAll)
	grp.Get("/:careerId", h.ScoreOne)
}

func (h *CompatHandler) ScoreAll(c fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	results, err := h.uc.ScoreAllCareers(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	res := make([]compatResponse, 0, len(results))
	for _, r := range results {
		res = append(res, toCompatResponse(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompatHandler) ScoreOne(c fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	careerID, ok := parseUUIDParam(c, "careerId")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.ScoreCareer(c.Context(), userID, careerID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCompatResponse(result))
}

func toCompatResponse(r compat.Result) compatResponse {
	return compatResponse{
		CareerID:        r.CareerID,
		CareerName:      r.CareerName,
		Percentage:      r.Percentage,
		CoveredWeight:   r.CoveredWeight,
		TotalConsidered: r.TotalConsidered,
		CoveredSkills:   r.CoveredSkills,
	}
}
