package usecase

import (
	"context"
	"errors"

	"career-compass/internal/domain/gap"
)

// ErrRoleNotFound marks a target role absent from the catalogue.
var ErrRoleNotFound = errors.New("role not found")

type SkillGaps struct {
	CoreSkills           []string `json:"core_skills"`
	AdvancedSkills       []string `json:"advanced_skills"`
	ToolsAndTechnologies []string `json:"tools_and_technologies"`
}

type RoleInfo struct {
	Summary         string `json:"summary"`
	ExperienceLevel string `json:"experience_level"`
	SalaryBand      string `json:"salary_band"`
}

type UpskillPlan struct {
	TargetRole            string    `json:"target_role"`
	CurrentSkillCount     int       `json:"current_skill_count"`
	MatchingSkills        []string  `json:"matching_skills"`
	SkillGaps             SkillGaps `json:"skill_gaps"`
	PriorityLearning      []string  `json:"priority_learning"`
	EstimatedLearningTime string    `json:"estimated_learning_time"`
	RoleInfo              RoleInfo  `json:"role_info"`
}

type UpskillingUsecase interface {
	SuggestUpskilling(ctx context.Context, currentSkills []string, targetRole string) (UpskillPlan, error)
}

type Upskilling struct {
	catalogue CatalogueProvider
}

func NewUpskillingUsecase(catalogue CatalogueProvider) *Upskilling {
	return &Upskilling{catalogue: catalogue}
}

// SuggestUpskilling buckets the candidate's missing skills for a target
// role into priority tiers and estimates the learning time. An empty
// current skill set is valid: every required skill is a gap.
func (u *Upskilling) SuggestUpskilling(_ context.Context, currentSkills []string, targetRole string) (UpskillPlan, error) {
	r, ok := u.catalogue.Catalogue().RoleByName(targetRole)
	if !ok {
		return UpskillPlan{}, ErrRoleNotFound
	}

	overlap := gap.Calculate(currentSkills, r)
	buckets := gap.Partition(overlap.MissingSkills, r)

	priority := buckets.CoreGaps
	if len(priority) > 5 {
		priority = priority[:5]
	}

	return UpskillPlan{
		TargetRole:        targetRole,
		CurrentSkillCount: len(currentSkills),
		MatchingSkills:    overlap.MatchingSkills,
		SkillGaps: SkillGaps{
			CoreSkills:           buckets.CoreGaps,
			AdvancedSkills:       buckets.AdvancedGaps,
			ToolsAndTechnologies: buckets.ToolGaps,
		},
		PriorityLearning:      priority,
		EstimatedLearningTime: gap.EstimateLearningTime(buckets),
		RoleInfo: RoleInfo{
			Summary:         r.Summary,
			ExperienceLevel: r.ExperienceLevel,
			SalaryBand:      r.SalaryBand,
		},
	}, nil
}
