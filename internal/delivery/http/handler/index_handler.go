package handler

import (
	"net/url"
	"strings"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IndexHandler struct {
	uc usecase.IndexingUsecase
}

func NewIndexHandler(uc usecase.IndexingUsecase) *IndexHandler {
	return &IndexHandler{uc: uc}
}

func (h *IndexHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/index-roles", h.IndexRoles)
	r.Post("/index-roles/:role_name/reembed", h.ReembedRole)
}

func (h *IndexHandler) IndexRoles(c fiber.Ctx) error {
	report, err := h.uc.IndexRoles(c.Context())
	if err != nil {
		return mapEngineError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *IndexHandler) ReembedRole(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("role_name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if err := h.uc.ReembedRole(c.Context(), name); err != nil {
		return mapEngineError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
