package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

type recommendRequest struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req recommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	topK, err := validateTopK(req.TopK)
	if err != nil {
		return err
	}

	recs, err := h.uc.Recommend(c.Context(), req.Skills, topK)
	if err != nil {
		return mapEngineError(err)
	}

	out := dto.RecommendationSetResponse{
		TotalRecommendations: len(recs),
		Recommendations:      make([]dto.RecommendationResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		out.Recommendations = append(out.Recommendations, dto.RecommendationResponse{
			RoleName:        rec.RoleName,
			Category:        rec.Category,
			MatchScore:      rec.MatchScore,
			MatchingSkills:  rec.MatchingSkills,
			MissingSkills:   rec.MissingSkills,
			RoleSummary:     rec.RoleSummary,
			ExperienceLevel: rec.ExperienceLevel,
			SalaryBand:      rec.SalaryBand,
			Progression:     rec.Progression,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
