package handler

import (
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UpskillingHandler struct {
	uc usecase.UpskillingUsecase
}

type upskillingRequest struct {
	CurrentSkills []string `json:"current_skills"`
	TargetRole    string   `json:"target_role"`
}

func NewUpskillingHandler(uc usecase.UpskillingUsecase) *UpskillingHandler {
	return &UpskillingHandler{uc: uc}
}

func (h *UpskillingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/upskilling-path", h.UpskillingPath)
}

func (h *UpskillingHandler) UpskillingPath(c fiber.Ctx) error {
	var req upskillingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if strings.TrimSpace(req.TargetRole) == "" {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "target_role is required", nil, nil)
	}

	plan, err := h.uc.SuggestUpskilling(c.Context(), req.CurrentSkills, req.TargetRole)
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.UpskillingResponse{
		TargetRole:        plan.TargetRole,
		CurrentSkillCount: plan.CurrentSkillCount,
		MatchingSkills:    plan.MatchingSkills,
		SkillGaps: dto.SkillGapsResponse{
			CoreSkills:           plan.SkillGaps.CoreSkills,
			AdvancedSkills:       plan.SkillGaps.AdvancedSkills,
			ToolsAndTechnologies: plan.SkillGaps.ToolsAndTechnologies,
		},
		PriorityLearning:      plan.PriorityLearning,
		EstimatedLearningTime: plan.EstimatedLearningTime,
		RoleInfo: dto.RoleInfoResponse{
			Summary:         plan.RoleInfo.Summary,
			ExperienceLevel: plan.RoleInfo.ExperienceLevel,
			SalaryBand:      plan.RoleInfo.SalaryBand,
		},
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
