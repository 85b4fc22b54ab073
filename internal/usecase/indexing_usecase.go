package usecase

import (
	"context"
	"log"
	"strings"

	"career-compass/internal/domain/role"
	"career-compass/internal/embedding"
	"career-compass/internal/repository"
)

// IndexReport aggregates one IndexRoles run. Per-role failures never abort
// the batch; they only show up in Failed.
type IndexReport struct {
	Embedded int `json:"embedded"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type IndexingUsecase interface {
	IndexRoles(ctx context.Context) (IndexReport, error)
	ReembedRole(ctx context.Context, roleName string) error
}

type Indexing struct {
	catalogue  CatalogueProvider
	embedder   embedding.Embedder
	embeddings repository.RoleEmbeddingRepository
	cache      MatchCache
	logger     *log.Logger
}

func NewIndexingUsecase(catalogue CatalogueProvider, embedder embedding.Embedder, embeddings repository.RoleEmbeddingRepository, cache MatchCache, logger *log.Logger) *Indexing {
	if logger == nil {
		logger = log.Default()
	}
	return &Indexing{catalogue: catalogue, embedder: embedder, embeddings: embeddings, cache: cache, logger: logger}
}

// IndexRoles embeds every catalogued role not yet present in the embedding
// store. The run is idempotent, not a refresh: an existing row is skipped
// without touching the model. Cross-process first runs converge because the
// repository upsert is atomic on role_name.
func (u *Indexing) IndexRoles(ctx context.Context) (IndexReport, error) {
	report := IndexReport{}

	for _, r := range u.catalogue.Catalogue().Roles() {
		if r.Name == "" {
			continue
		}

		exists, err := u.embeddings.Exists(ctx, r.Name)
		if err != nil {
			u.logger.Printf("[Indexer] existence check failed role=%q: %v", r.Name, err)
			report.Failed++
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		if err := u.embedAndStore(ctx, r); err != nil {
			u.logger.Printf("[Indexer] embedding failed role=%q: %v", r.Name, err)
			report.Failed++
			continue
		}
		report.Embedded++
	}

	u.logger.Printf("[Indexer] embedded %d roles (skipped %d existing, %d failed)",
		report.Embedded, report.Skipped, report.Failed)

	if report.Embedded > 0 && u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "match:skills:*")
	}

	return report, nil
}

// ReembedRole forces a refresh for one role: delete, then re-insert.
func (u *Indexing) ReembedRole(ctx context.Context, roleName string) error {
	r, ok := u.catalogue.Catalogue().RoleByName(roleName)
	if !ok {
		return ErrRoleNotFound
	}

	if err := u.embeddings.Delete(ctx, roleName); err != nil {
		u.logger.Printf("[Indexer] delete failed role=%q: %v", roleName, err)
		return ErrInternal
	}
	if err := u.embedAndStore(ctx, r); err != nil {
		u.logger.Printf("[Indexer] re-embed failed role=%q: %v", roleName, err)
		return ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "match:skills:*")
	}
	return nil
}

func (u *Indexing) embedAndStore(ctx context.Context, r role.Role) error {
	vec, err := u.embedder.Embed(ctx, ComposeRoleText(r))
	if err != nil {
		return err
	}
	return u.embeddings.Upsert(ctx, repository.RoleEmbeddingUpsert{
		RoleName:  r.Name,
		Category:  r.Category,
		Embedding: vec,
	})
}

// ComposeRoleText flattens a role into the single string that gets
// embedded. Segment order and separators are part of the index contract:
// changing them invalidates stored vectors.
func ComposeRoleText(r role.Role) string {
	parts := []string{r.Name, r.Summary}

	if len(r.CoreSkills) > 0 {
		parts = append(parts, "Core skills: "+strings.Join(r.CoreSkills, ", "))
	}
	if len(r.AdvancedSkills) > 0 {
		parts = append(parts, "Advanced skills: "+strings.Join(r.AdvancedSkills, ", "))
	}
	if len(r.Tools) > 0 {
		parts = append(parts, "Technologies: "+strings.Join(r.Tools, ", "))
	}
	if len(r.Responsibilities) > 0 {
		parts = append(parts, "Responsibilities: "+strings.Join(r.Responsibilities, ", "))
	}

	return strings.Join(parts, " | ")
}
