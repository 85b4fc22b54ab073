package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"career-compass/internal/embedding"
	"career-compass/internal/knowledgebase"
	"career-compass/internal/repository"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	DefaultTopK = 5
	MaxTopK     = 20
)

// MatchResult is one ranked role. MatchScore is a monotonic percentage
// derived from cosine distance, not a calibrated probability; pathological
// embeddings can push it below 0 or above 100 and it is passed through
// unclamped so a degenerate model stays visible.
type MatchResult struct {
	RoleName   string  `json:"role_name"`
	Category   string  `json:"category"`
	MatchScore float64 `json:"match_score"`
}

type MatchingUsecase interface {
	MatchSkills(ctx context.Context, skills []string, topK int) ([]MatchResult, error)
}

// CatalogueProvider hands out the current immutable role catalogue.
type CatalogueProvider interface {
	Catalogue() *knowledgebase.Catalogue
}

type Matching struct {
	embedder   embedding.Embedder
	embeddings repository.RoleEmbeddingRepository
	cache      MatchCache
	logger     *log.Logger
}

func NewMatchingUsecase(embedder embedding.Embedder, embeddings repository.RoleEmbeddingRepository, cache MatchCache, logger *log.Logger) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{embedder: embedder, embeddings: embeddings, cache: cache, logger: logger}
}

// MatchSkills embeds the candidate skills as one comma-joined string (order
// as given, no dedup) and returns the topK nearest roles in index distance
// order. An empty skill set is a valid "no results" query.
func (u *Matching) MatchSkills(ctx context.Context, skills []string, topK int) ([]MatchResult, error) {
	if len(skills) == 0 {
		return []MatchResult{}, nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	if u.cache != nil {
		var cached []MatchResult
		if ok, err := u.cache.GetJSON(ctx, MatchCacheKey(skills, topK), &cached); err == nil && ok {
			return cached, nil
		}
	}

	queryText := strings.Join(skills, ", ")
	vec, err := u.embedder.Embed(ctx, queryText)
	if err != nil {
		u.logger.Printf("[Matcher] embed query failed: %v", err)
		return nil, ErrInternal
	}

	rows, err := u.embeddings.NearestRoles(ctx, vec, topK)
	if err != nil {
		u.logger.Printf("[Matcher] nearest-roles query failed: %v", err)
		return nil, ErrInternal
	}

	out := make([]MatchResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, MatchResult{
			RoleName:   r.RoleName,
			Category:   r.Category,
			MatchScore: distanceToScore(r.Distance),
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, MatchCacheKey(skills, topK), out, matchCacheTTL)
	}

	return out, nil
}

// distanceToScore converts cosine distance to a percentage rounded to two
// decimals: score = (1 - d) * 100.
func distanceToScore(d float64) float64 {
	return math.Round((1-d)*100*100) / 100
}
