package dto

type SkillGapsResponse struct {
	CoreSkills           []string `json:"core_skills"`
	AdvancedSkills       []string `json:"advanced_skills"`
	ToolsAndTechnologies []string `json:"tools_and_technologies"`
}

type RoleInfoResponse struct {
	Summary         string `json:"summary"`
	ExperienceLevel string `json:"experience_level"`
	SalaryBand      string `json:"salary_band"`
}

type UpskillingResponse struct {
	TargetRole            string            `json:"target_role"`
	CurrentSkillCount     int               `json:"current_skill_count"`
	MatchingSkills        []string          `json:"matching_skills"`
	SkillGaps             SkillGapsResponse `json:"skill_gaps"`
	PriorityLearning      []string          `json:"priority_learning"`
	EstimatedLearningTime string            `json:"estimated_learning_time"`
	RoleInfo              RoleInfoResponse  `json:"role_info"`
}
