package dto

type RoleListItemResponse struct {
	RoleName        string `json:"role_name"`
	Category        string `json:"category"`
	ExperienceLevel string `json:"experience_level"`
	RoleSummary     string `json:"role_summary"`
}

type RoleListResponse struct {
	TotalRoles int                    `json:"total_roles"`
	Roles      []RoleListItemResponse `json:"roles"`
}

type SkillListResponse struct {
	TotalSkills      int               `json:"total_skills"`
	SkillsByCategory SkillGapsResponse `json:"skills_by_category"`
}
