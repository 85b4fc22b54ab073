package dto

type ProgressionStepResponse struct {
	RoleName        string   `json:"role_name"`
	SkillsNeeded    []string `json:"skills_needed"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryBand      string   `json:"salary_band"`
}

type ProgressionResponse struct {
	CurrentRole     string                    `json:"current_role"`
	ProgressionPath string                    `json:"progression_path"`
	NextSteps       []ProgressionStepResponse `json:"next_steps"`
}
