package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"career-compass/internal/domain/role"
)

func TestSuggestUpskilling_DataAnalystScenario(t *testing.T) {
	uc := NewUpskillingUsecase(newStaticCatalogue(dataAnalystRole()))

	plan, err := uc.SuggestUpskilling(context.Background(), []string{"python", "sql"}, "Data Analyst")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if plan.TargetRole != "Data Analyst" || plan.CurrentSkillCount != 2 {
		t.Fatalf("unexpected plan header: %+v", plan)
	}
	if !reflect.DeepEqual(plan.MatchingSkills, []string{"python", "sql"}) {
		t.Fatalf("unexpected matching skills: %v", plan.MatchingSkills)
	}
	if !reflect.DeepEqual(plan.SkillGaps.CoreSkills, []string{"Excel"}) {
		t.Fatalf("unexpected core gaps: %v", plan.SkillGaps.CoreSkills)
	}
	if !reflect.DeepEqual(plan.SkillGaps.AdvancedSkills, []string{"Statistics"}) {
		t.Fatalf("unexpected advanced gaps: %v", plan.SkillGaps.AdvancedSkills)
	}
	if !reflect.DeepEqual(plan.SkillGaps.ToolsAndTechnologies, []string{"Tableau"}) {
		t.Fatalf("unexpected tool gaps: %v", plan.SkillGaps.ToolsAndTechnologies)
	}
	if !reflect.DeepEqual(plan.PriorityLearning, []string{"Excel"}) {
		t.Fatalf("priority learning must be the core gaps: %v", plan.PriorityLearning)
	}
	if plan.EstimatedLearningTime != "3 weeks" {
		t.Fatalf("expected %q, got %q", "3 weeks", plan.EstimatedLearningTime)
	}
	if plan.RoleInfo.SalaryBand != "4-8 LPA" || plan.RoleInfo.ExperienceLevel != "Entry" {
		t.Fatalf("unexpected role info: %+v", plan.RoleInfo)
	}
}

func TestSuggestUpskilling_UnknownRole(t *testing.T) {
	uc := NewUpskillingUsecase(newStaticCatalogue(dataAnalystRole()))

	_, err := uc.SuggestUpskilling(context.Background(), []string{"Python"}, "Astronaut")
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestSuggestUpskilling_NoCurrentSkills(t *testing.T) {
	uc := NewUpskillingUsecase(newStaticCatalogue(dataAnalystRole()))

	plan, err := uc.SuggestUpskilling(context.Background(), nil, "Data Analyst")
	if err != nil {
		t.Fatalf("empty current skills must be valid: %v", err)
	}
	if plan.CurrentSkillCount != 0 || len(plan.MatchingSkills) != 0 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if len(plan.SkillGaps.CoreSkills) != 3 {
		t.Fatalf("expected every core skill to be a gap, got %v", plan.SkillGaps.CoreSkills)
	}
}

func TestSuggestUpskilling_PriorityCappedAtFive(t *testing.T) {
	r := role.Role{
		Name:       "Platform Engineer",
		CoreSkills: []string{"Go", "Kubernetes", "Terraform", "AWS", "Linux", "Networking", "CI/CD"},
	}
	uc := NewUpskillingUsecase(newStaticCatalogue(r))

	plan, err := uc.SuggestUpskilling(context.Background(), nil, "Platform Engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan.PriorityLearning) != 5 {
		t.Fatalf("expected priority capped at 5, got %v", plan.PriorityLearning)
	}
	if !reflect.DeepEqual(plan.PriorityLearning, plan.SkillGaps.CoreSkills[:5]) {
		t.Fatalf("priority must be the first core gaps: %v", plan.PriorityLearning)
	}
}
