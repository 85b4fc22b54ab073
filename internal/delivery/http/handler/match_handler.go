package handler

import (
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

type matchSkillsRequest struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match-skills", h.MatchSkills)
}

func (h *MatchHandler) MatchSkills(c fiber.Ctx) error {
	var req matchSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	skills, err := validateSkills(req.Skills)
	if err != nil {
		return err
	}
	topK, err := validateTopK(req.TopK)
	if err != nil {
		return err
	}

	matches, err := h.uc.MatchSkills(c.Context(), skills, topK)
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.MatchSkillsResponse{
		InputSkills:  skills,
		MatchesFound: len(matches),
		Matches:      make([]dto.MatchResponse, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, dto.MatchResponse{
			RoleName:   m.RoleName,
			Category:   m.Category,
			MatchScore: m.MatchScore,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// validateSkills drops blank entries and rejects an effectively empty list.
func validateSkills(skills []string) ([]string, error) {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, middleware.NewAppError(fiber.StatusUnprocessableEntity, "Please provide at least one skill", nil, nil)
	}
	return out, nil
}

func validateTopK(topK int) (int, error) {
	if topK == 0 {
		return usecase.DefaultTopK, nil
	}
	if topK < 1 || topK > usecase.MaxTopK {
		return 0, middleware.NewAppError(fiber.StatusUnprocessableEntity, "top_k must be between 1 and 20", nil, nil)
	}
	return topK, nil
}
