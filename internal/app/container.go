package app

import (
	"context"
	"log"
	"os"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/embedding"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/knowledgebase"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
)

// Container owns the process-wide handles: the embedding model client, the
// vector index connection and the catalogue. Built once at startup and
// passed by reference into every engine operation.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	KB     *knowledgebase.Store

	Matching       usecase.MatchingUsecase
	Recommendation usecase.RecommendationUsecase
	Upskilling     usecase.UpskillingUsecase
	Progression    usecase.ProgressionUsecase
	Catalogue      usecase.CatalogueUsecase
	Indexing       usecase.IndexingUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	kb, err := knowledgebase.NewStore(cfg.KnowledgeBase.Path, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	embedder, err := embedding.NewOpenAIEmbedder(cfg.Embedding)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	embeddings := repository.NewPostgresRoleEmbeddingRepository(db)

	matching := usecase.NewMatchingUsecase(embedder, embeddings, redisCache, logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		KB:     kb,

		Matching:       matching,
		Recommendation: usecase.NewRecommendationUsecase(matching, kb, logger),
		Upskilling:     usecase.NewUpskillingUsecase(kb),
		Progression:    usecase.NewProgressionUsecase(kb, matching, logger),
		Catalogue:      usecase.NewCatalogueUsecase(kb),
		Indexing:       usecase.NewIndexingUsecase(kb, embedder, embeddings, redisCache, logger),
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
