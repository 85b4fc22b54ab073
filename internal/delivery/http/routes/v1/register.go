package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the engine usecases into the v1 route tree. Construction
// happens once in the app container; routes only wire handlers.
type Deps struct {
	Matching       usecase.MatchingUsecase
	Recommendation usecase.RecommendationUsecase
	Upskilling     usecase.UpskillingUsecase
	Progression    usecase.ProgressionUsecase
	Catalogue      usecase.CatalogueUsecase
	Indexing       usecase.IndexingUsecase
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	handler.NewMatchHandler(d.Matching).RegisterRoutes(r)
	handler.NewRecommendationHandler(d.Recommendation).RegisterRoutes(r)
	handler.NewUpskillingHandler(d.Upskilling).RegisterRoutes(r)
	handler.NewProgressionHandler(d.Progression).RegisterRoutes(r)
	handler.NewKnowledgeBaseHandler(d.Catalogue).RegisterRoutes(r)
	handler.NewIndexHandler(d.Indexing).RegisterRoutes(r)
}
