package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"career-compass/internal/domain/role"
)

func TestCareerProgression_KnownRole(t *testing.T) {
	uc := NewProgressionUsecase(newStaticCatalogue(dataAnalystRole(), seniorAnalystRole()), &mockMatcher{}, nil)

	plan, err := uc.CareerProgression(context.Background(), "Data Analyst", []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if plan.CurrentRole != "Data Analyst" {
		t.Fatalf("unexpected current role: %q", plan.CurrentRole)
	}
	if plan.ProgressionPath != "Senior Data Analyst → Analytics Lead" {
		t.Fatalf("unexpected path: %q", plan.ProgressionPath)
	}

	// "Analytics Lead" is not catalogued, so only one resolvable step.
	if len(plan.NextSteps) != 1 {
		t.Fatalf("expected 1 next step, got %+v", plan.NextSteps)
	}
	step := plan.NextSteps[0]
	if step.RoleName != "Senior Data Analyst" || step.SalaryBand != "8-15 LPA" {
		t.Fatalf("unexpected step: %+v", step)
	}
	want := []string{"Data Modeling", "Machine Learning", "Tableau", "Airflow"}
	if !reflect.DeepEqual(step.SkillsNeeded, want) {
		t.Fatalf("expected skills needed %v, got %v", want, step.SkillsNeeded)
	}
}

func TestCareerProgression_SkillsNeededCappedAtFive(t *testing.T) {
	next := role.Role{
		Name:       "Staff Engineer",
		CoreSkills: []string{"Architecture", "Mentoring", "Go", "Distributed Systems", "Databases", "Security"},
	}
	current := role.Role{
		Name:            "Senior Engineer",
		ProgressionPath: []string{"Staff Engineer"},
	}
	uc := NewProgressionUsecase(newStaticCatalogue(current, next), &mockMatcher{}, nil)

	plan, err := uc.CareerProgression(context.Background(), "Senior Engineer", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan.NextSteps) != 1 || len(plan.NextSteps[0].SkillsNeeded) != 5 {
		t.Fatalf("expected 5 skills needed, got %+v", plan.NextSteps)
	}
}

func TestCareerProgression_ExplicitPathPreferred(t *testing.T) {
	current := role.Role{
		Name:            "Data Analyst",
		Progression:     "Legacy String → Should Be Ignored",
		ProgressionPath: []string{"Senior Data Analyst"},
	}
	uc := NewProgressionUsecase(newStaticCatalogue(current, seniorAnalystRole()), &mockMatcher{}, nil)

	plan, err := uc.CareerProgression(context.Background(), "Data Analyst", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan.NextSteps) != 1 || plan.NextSteps[0].RoleName != "Senior Data Analyst" {
		t.Fatalf("expected explicit path to win, got %+v", plan.NextSteps)
	}
}

func TestCareerProgression_FallsBackToMatcher(t *testing.T) {
	matcher := &mockMatcher{results: []MatchResult{{RoleName: "Data Analyst", MatchScore: 92}}}
	uc := NewProgressionUsecase(newStaticCatalogue(dataAnalystRole(), seniorAnalystRole()), matcher, nil)

	plan, err := uc.CareerProgression(context.Background(), "", []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matcher.lastK != 1 {
		t.Fatalf("fallback must ask the matcher for a single role, got top_k=%d", matcher.lastK)
	}
	if plan.CurrentRole != "Data Analyst" {
		t.Fatalf("expected matched role as current, got %q", plan.CurrentRole)
	}
}

func TestCareerProgression_Undetermined(t *testing.T) {
	uc := NewProgressionUsecase(newStaticCatalogue(dataAnalystRole()), &mockMatcher{}, nil)

	_, err := uc.CareerProgression(context.Background(), "Astronaut", []string{"Zero Gravity"})
	if !errors.Is(err, ErrRoleUndetermined) {
		t.Fatalf("expected ErrRoleUndetermined, got %v", err)
	}
}

func TestCareerProgression_MatcherErrorPropagates(t *testing.T) {
	uc := NewProgressionUsecase(newStaticCatalogue(), &mockMatcher{err: ErrInternal}, nil)

	_, err := uc.CareerProgression(context.Background(), "Unknown", []string{"Go"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected matcher error to propagate, got %v", err)
	}
}
