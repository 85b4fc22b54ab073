package usecase

import "context"

type RoleListItem struct {
	RoleName        string `json:"role_name"`
	Category        string `json:"category"`
	ExperienceLevel string `json:"experience_level"`
	RoleSummary     string `json:"role_summary"`
}

type SkillsByCategory struct {
	CoreSkills           []string `json:"core_skills"`
	AdvancedSkills       []string `json:"advanced_skills"`
	ToolsAndTechnologies []string `json:"tools_and_technologies"`
}

type CatalogueUsecase interface {
	ListRoles(ctx context.Context) ([]RoleListItem, error)
	ListSkills(ctx context.Context) (SkillsByCategory, error)
}

type Cataloguing struct {
	catalogue CatalogueProvider
}

func NewCatalogueUsecase(catalogue CatalogueProvider) *Cataloguing {
	return &Cataloguing{catalogue: catalogue}
}

func (u *Cataloguing) ListRoles(_ context.Context) ([]RoleListItem, error) {
	roles := u.catalogue.Catalogue().Roles()

	out := make([]RoleListItem, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleListItem{
			RoleName:        r.Name,
			Category:        r.Category,
			ExperienceLevel: r.ExperienceLevel,
			RoleSummary:     r.Summary,
		})
	}
	return out, nil
}

func (u *Cataloguing) ListSkills(_ context.Context) (SkillsByCategory, error) {
	core, advanced, tools := u.catalogue.Catalogue().SkillsByTier()
	return SkillsByCategory{
		CoreSkills:           core,
		AdvancedSkills:       advanced,
		ToolsAndTechnologies: tools,
	}, nil
}
