package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/progression"
	"career-compass/internal/domain/role"
)

// ErrRoleUndetermined means neither the supplied role name nor a skills
// match could resolve the candidate's current role.
var ErrRoleUndetermined = errors.New("could not determine current role")

type ProgressionStep struct {
	RoleName        string   `json:"role_name"`
	SkillsNeeded    []string `json:"skills_needed"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryBand      string   `json:"salary_band"`
}

type ProgressionPlan struct {
	CurrentRole     string            `json:"current_role"`
	ProgressionPath string            `json:"progression_path"`
	NextSteps       []ProgressionStep `json:"next_steps"`
}

type ProgressionUsecase interface {
	CareerProgression(ctx context.Context, currentRole string, currentSkills []string) (ProgressionPlan, error)
}

type Progressing struct {
	catalogue CatalogueProvider
	matcher   MatchingUsecase
	logger    *log.Logger
}

func NewProgressionUsecase(catalogue CatalogueProvider, matcher MatchingUsecase, logger *log.Logger) *Progressing {
	if logger == nil {
		logger = log.Default()
	}
	return &Progressing{catalogue: catalogue, matcher: matcher, logger: logger}
}

// CareerProgression resolves the candidate's current role (by name, or by a
// top-1 skills match when the name is unknown), then walks its progression
// path annotating each resolvable successor with the skills still needed.
// Successor names missing from the catalogue are dropped.
func (u *Progressing) CareerProgression(ctx context.Context, currentRole string, currentSkills []string) (ProgressionPlan, error) {
	cat := u.catalogue.Catalogue()

	r, ok := cat.RoleByName(currentRole)
	if !ok {
		matches, err := u.matcher.MatchSkills(ctx, currentSkills, 1)
		if err != nil {
			return ProgressionPlan{}, err
		}
		if len(matches) == 0 {
			return ProgressionPlan{}, ErrRoleUndetermined
		}
		r, ok = cat.RoleByName(matches[0].RoleName)
		if !ok {
			return ProgressionPlan{}, ErrRoleUndetermined
		}
		if strings.TrimSpace(currentRole) == "" {
			currentRole = r.Name
		}
	}

	next := nextRoles(r)

	steps := make([]ProgressionStep, 0, len(next))
	for _, name := range next {
		nr, ok := cat.RoleByName(name)
		if !ok {
			u.logger.Printf("[Progression] next role %q not in catalogue, dropping", name)
			continue
		}

		overlap := gap.Calculate(currentSkills, nr)
		needed := overlap.MissingSkills
		if len(needed) > 5 {
			needed = needed[:5]
		}

		steps = append(steps, ProgressionStep{
			RoleName:        name,
			SkillsNeeded:    needed,
			ExperienceLevel: nr.ExperienceLevel,
			SalaryBand:      nr.SalaryBand,
		})
	}

	return ProgressionPlan{
		CurrentRole:     currentRole,
		ProgressionPath: progressionDisplay(r),
		NextSteps:       steps,
	}, nil
}

// nextRoles prefers the explicit ordered list; the legacy delimited string
// is parsed only as a fallback for older catalogues.
func nextRoles(r role.Role) []string {
	if len(r.ProgressionPath) > 0 {
		out := make([]string, 0, len(r.ProgressionPath))
		for _, name := range r.ProgressionPath {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out = append(out, name)
		}
		return out
	}
	return progression.Parse(r.Progression)
}

func progressionDisplay(r role.Role) string {
	if r.Progression != "" {
		return r.Progression
	}
	return strings.Join(r.ProgressionPath, " "+progression.Delimiter+" ")
}
