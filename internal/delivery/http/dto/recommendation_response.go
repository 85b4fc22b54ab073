package dto

type RecommendationResponse struct {
	RoleName        string   `json:"role_name"`
	Category        string   `json:"category"`
	MatchScore      float64  `json:"match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	RoleSummary     string   `json:"role_summary"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryBand      string   `json:"salary_band"`
	Progression     string   `json:"career_progression"`
}

type RecommendationSetResponse struct {
	TotalRecommendations int                      `json:"total_recommendations"`
	Recommendations      []RecommendationResponse `json:"recommendations"`
}
