package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// MatchCache is the optional result cache in front of the vector index.
// The redis implementation bypasses itself when unavailable, so callers
// treat every miss (or error) as a plain index query.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const matchCacheTTL = 10 * time.Minute

type matchCacheKeyInput struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

// MatchCacheKey derives a stable key from the query skills (order
// preserved, matching the embedded query text) and topK.
func MatchCacheKey(skills []string, topK int) string {
	b, _ := json.Marshal(matchCacheKeyInput{Skills: skills, TopK: topK})
	sum := sha256.Sum256(b)
	return "match:skills:" + hex.EncodeToString(sum[:])
}
