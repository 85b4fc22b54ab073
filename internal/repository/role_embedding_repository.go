package repository

import (
	"context"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type RoleEmbeddingUpsert struct {
	RoleName  string
	Category  string
	Embedding []float32
}

// RoleMatch is one nearest-neighbor row: cosine distance to the query
// vector, smallest first.
type RoleMatch struct {
	RoleName string
	Category string
	Distance float64
}

// RoleEmbeddingRepository persists one vector per role_name. Upsert must be
// atomic on the role_name unique key: that constraint is what resolves the
// first-run race between two processes both observing an absent row.
type RoleEmbeddingRepository interface {
	Exists(ctx context.Context, roleName string) (bool, error)
	Upsert(ctx context.Context, e RoleEmbeddingUpsert) error
	Delete(ctx context.Context, roleName string) error
	Count(ctx context.Context) (int64, error)
	NearestRoles(ctx context.Context, embedding []float32, limit int) ([]RoleMatch, error)
}

type PostgresRoleEmbeddingRepository struct {
	db database.DB
}

func NewPostgresRoleEmbeddingRepository(db database.DB) *PostgresRoleEmbeddingRepository {
	return &PostgresRoleEmbeddingRepository{db: db}
}

func (r *PostgresRoleEmbeddingRepository) Exists(ctx context.Context, roleName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM role_embeddings WHERE role_name = $1)`,
		roleName,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRoleEmbeddingRepository) Upsert(ctx context.Context, e RoleEmbeddingUpsert) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO role_embeddings (id, role_name, category, embedding)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (role_name) DO UPDATE SET
			category = EXCLUDED.category,
			embedding = EXCLUDED.embedding,
			created_at = now()`,
		uuid.New(),
		e.RoleName,
		e.Category,
		pgvector.NewVector(e.Embedding),
	)
	return err
}

func (r *PostgresRoleEmbeddingRepository) Delete(ctx context.Context, roleName string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM role_embeddings WHERE role_name = $1`, roleName)
	return err
}

func (r *PostgresRoleEmbeddingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM role_embeddings`).Scan(&n)
	return n, err
}

func (r *PostgresRoleEmbeddingRepository) NearestRoles(ctx context.Context, embedding []float32, limit int) ([]RoleMatch, error) {
	vec := pgvector.NewVector(embedding)

	rows, err := r.db.Query(ctx,
		`SELECT role_name, category, embedding <=> $1 AS distance
		 FROM role_embeddings
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		vec,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleMatch, 0, limit)
	for rows.Next() {
		var m RoleMatch
		if err := rows.Scan(&m.RoleName, &m.Category, &m.Distance); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
