package usecase

import (
	"context"
	"errors"
	"log"

	"career-compass/internal/domain/gap"
)

// ErrNoSkills marks a recommendation request with an empty skill set. The
// matcher treats that as a valid empty query; the composer does not.
var ErrNoSkills = errors.New("no skills supplied")

// Recommendation is a matched role enriched with its catalogue record and
// the candidate's skill overlap.
type Recommendation struct {
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

type RecommendationUsecase interface {
	Recommend(ctx context.Context, skills []string, topK int) ([]Recommendation, error)
}

type Recommending struct {
	matcher   MatchingUsecase
	catalogue CatalogueProvider
	logger    *log.Logger
}

func NewRecommendationUsecase(matcher MatchingUsecase, catalogue CatalogueProvider, logger *log.Logger) *Recommending {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommending{matcher: matcher, catalogue: catalogue, logger: logger}
}

// Recommend runs the matcher and enriches each hit from the catalogue,
// preserving matcher order. A match whose role has dropped out of the
// catalogue (index/catalogue drift) is skipped, never fatal.
func (u *Recommending) Recommend(ctx context.Context, skills []string, topK int) ([]Recommendation, error) {
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	matches, err := u.matcher.MatchSkills(ctx, skills, topK)
	if err != nil {
		return nil, err
	}

	cat := u.catalogue.Catalogue()
	out := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		r, ok := cat.RoleByName(m.RoleName)
		if !ok {
			u.logger.Printf("[Recommender] role %q in index but not in catalogue, skipping", m.RoleName)
			continue
		}

		overlap := gap.Calculate(skills, r)
		out = append(out, Recommendation{
			RoleName:        m.RoleName,
			Category:        m.Category,
			MatchScore:      m.MatchScore,
			MatchingSkills:  overlap.MatchingSkills,
			MissingSkills:   overlap.MissingSkills,
			RoleSummary:     r.Summary,
			ExperienceLevel: r.ExperienceLevel,
			SalaryBand:      r.SalaryBand,
			Progression:     r.Progression,
		})
	}

	return out, nil
}
