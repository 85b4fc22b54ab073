package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressionHandler struct {
	uc usecase.ProgressionUsecase
}

type progressionRequest struct {
	CurrentRole   string   `json:"current_role"`
	CurrentSkills []string `json:"current_skills"`
}

func NewProgressionHandler(uc usecase.ProgressionUsecase) *ProgressionHandler {
	return &ProgressionHandler{uc: uc}
}

func (h *ProgressionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/career-progression", h.CareerProgression)
}

func (h *ProgressionHandler) CareerProgression(c fiber.Ctx) error {
	var req progressionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	plan, err := h.uc.CareerProgression(c.Context(), req.CurrentRole, req.CurrentSkills)
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.ProgressionResponse{
		CurrentRole:     plan.CurrentRole,
		ProgressionPath: plan.ProgressionPath,
		NextSteps:       make([]dto.ProgressionStepResponse, 0, len(plan.NextSteps)),
	}
	for _, s := range plan.NextSteps {
		out.NextSteps = append(out.NextSteps, dto.ProgressionStepResponse{
			RoleName:        s.RoleName,
			SkillsNeeded:    s.SkillsNeeded,
			ExperienceLevel: s.ExperienceLevel,
			SalaryBand:      s.SalaryBand,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
