package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type KnowledgeBaseHandler struct {
	uc usecase.CatalogueUsecase
}

func NewKnowledgeBaseHandler(uc usecase.CatalogueUsecase) *KnowledgeBaseHandler {
	return &KnowledgeBaseHandler{uc: uc}
}

func (h *KnowledgeBaseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/knowledge-base")
	grp.Get("/roles", h.ListRoles)
	grp.Get("/skills", h.ListSkills)
}

func (h *KnowledgeBaseHandler) ListRoles(c fiber.Ctx) error {
	items, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.RoleListResponse{
		TotalRoles: len(items),
		Roles:      make([]dto.RoleListItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Roles = append(out.Roles, dto.RoleListItemResponse{
			RoleName:        it.RoleName,
			Category:        it.Category,
			ExperienceLevel: it.ExperienceLevel,
			RoleSummary:     it.RoleSummary,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *KnowledgeBaseHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.SkillListResponse{
		TotalSkills: len(skills.CoreSkills) + len(skills.AdvancedSkills) + len(skills.ToolsAndTechnologies),
		SkillsByCategory: dto.SkillGapsResponse{
			CoreSkills:           skills.CoreSkills,
			AdvancedSkills:       skills.AdvancedSkills,
			ToolsAndTechnologies: skills.ToolsAndTechnologies,
		},
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
