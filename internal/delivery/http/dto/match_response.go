package dto

type MatchResponse struct {
	RoleName   string  `json:"role_name"`
	Category   string  `json:"category"`
	MatchScore float64 `json:"match_score"`
}

type MatchSkillsResponse struct {
	InputSkills  []string        `json:"input_skills"`
	MatchesFound int             `json:"matches_found"`
	Matches      []MatchResponse `json:"matches"`
}
