package handler

import (
	"errors"

	"skill-bridge/internal/pkg/response"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// respondError maps usecase errors onto the response envelope. Conflicts
// carry their machine-readable code, everything unexpected collapses to a
// plain 500.
func respondError(c fiber.Ctx, err error) error {
	if ce, ok := usecase.AsConflict(err); ok {
		return response.Conflict(c, ce.Code, ce.Message)
	}
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
