package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/role"
	"career-compass/internal/knowledgebase"
	"career-compass/internal/repository"
)

type mockEmbedder struct {
	vec   []float32
	err   error
	calls []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls = append(m.calls, text)
	if m.err != nil {
		return nil, m.err
	}
	return m.vec, nil
}

func (m *mockEmbedder) ModelName() string { return "mock-model" }
func (m *mockEmbedder) Dimensions() int   { return 3 }

type mockEmbeddingRepo struct {
	existing  map[string]bool
	matches   []repository.RoleMatch
	existsErr error
	upsertErr error
	searchErr error

	upserts    []repository.RoleEmbeddingUpsert
	deletes    []string
	lastLimit  int
	searchRuns int
}

func (m *mockEmbeddingRepo) Exists(_ context.Context, roleName string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[roleName], nil
}

func (m *mockEmbeddingRepo) Upsert(_ context.Context, e repository.RoleEmbeddingUpsert) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.existing == nil {
		m.existing = map[string]bool{}
	}
	m.existing[e.RoleName] = true
	m.upserts = append(m.upserts, e)
	return nil
}

func (m *mockEmbeddingRepo) Delete(_ context.Context, roleName string) error {
	delete(m.existing, roleName)
	m.deletes = append(m.deletes, roleName)
	return nil
}

func (m *mockEmbeddingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.existing)), nil
}

func (m *mockEmbeddingRepo) NearestRoles(_ context.Context, _ []float32, limit int) ([]repository.RoleMatch, error) {
	m.searchRuns++
	m.lastLimit = limit
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if len(m.matches) > limit {
		return m.matches[:limit], nil
	}
	return m.matches, nil
}

type staticCatalogue struct {
	cat *knowledgebase.Catalogue
}

func newStaticCatalogue(roles ...role.Role) staticCatalogue {
	return staticCatalogue{cat: knowledgebase.NewCatalogue(roles)}
}

func (s staticCatalogue) Catalogue() *knowledgebase.Catalogue { return s.cat }

type mockMatcher struct {
	results []MatchResult
	err     error
	lastK   int
}

func (m *mockMatcher) MatchSkills(_ context.Context, _ []string, topK int) ([]MatchResult, error) {
	m.lastK = topK
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func (m *mockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) {
	m.gets++
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = nil
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, _ string) error {
	m.store = nil
	return nil
}

func dataAnalystRole() role.Role {
	return role.Role{
		Name:            "Data Analyst",
		Category:        "Data",
		ExperienceLevel: "Entry",
		Summary:         "Turns raw data into reports",
		CoreSkills:      []string{"Python", "SQL", "Excel"},
		AdvancedSkills:  []string{"Statistics"},
		Tools:           []string{"Tableau"},
		Progression:     "Senior Data Analyst → Analytics Lead",
		SalaryBand:      "4-8 LPA",
	}
}

func seniorAnalystRole() role.Role {
	return role.Role{
		Name:            "Senior Data Analyst",
		Category:        "Data",
		ExperienceLevel: "Mid",
		Summary:         "Leads analysis projects",
		CoreSkills:      []string{"Python", "SQL", "Data Modeling"},
		AdvancedSkills:  []string{"Machine Learning"},
		Tools:           []string{"Tableau", "Airflow"},
		SalaryBand:      "8-15 LPA",
	}
}
