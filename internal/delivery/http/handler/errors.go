package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapEngineError converts usecase sentinels into HTTP app errors. Raw
// storage or model errors never reach here; the usecases launder them into
// ErrInternal first.
func mapEngineError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found in knowledge base", nil, err)
	case errors.Is(err, usecase.ErrRoleUndetermined):
		return middleware.NewAppError(fiber.StatusNotFound, "Could not determine current role", nil, err)
	case errors.Is(err, usecase.ErrNoSkills):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Please provide at least one skill", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
