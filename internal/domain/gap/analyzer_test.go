package gap

import (
	"fmt"
	"testing"

	"career-compass/internal/domain/role"
)

func dataAnalyst() role.Role {
	return role.Role{
		Name:           "Data Analyst",
		CoreSkills:     []string{"Python", "SQL", "Excel"},
		AdvancedSkills: []string{"Statistics"},
		Tools:          []string{"Tableau"},
	}
}

func TestCalculate_MatchingAndMissing(t *testing.T) {
	ov := Calculate([]string{"Python", "sql"}, dataAnalyst())

	wantMatching := map[string]bool{"python": true, "sql": true}
	if len(ov.MatchingSkills) != 2 {
		t.Fatalf("expected 2 matching skills, got %v", ov.MatchingSkills)
	}
	for _, s := range ov.MatchingSkills {
		if !wantMatching[s] {
			t.Fatalf("unexpected matching skill %q", s)
		}
	}

	wantMissing := map[string]bool{"Excel": true, "Statistics": true, "Tableau": true}
	if len(ov.MissingSkills) != 3 {
		t.Fatalf("expected 3 missing skills, got %v", ov.MissingSkills)
	}
	for _, s := range ov.MissingSkills {
		if !wantMissing[s] {
			t.Fatalf("unexpected missing skill %q", s)
		}
	}
}

func TestCalculate_MatchingAndMissingDisjoint(t *testing.T) {
	ov := Calculate([]string{"python", "Tableau", "Go"}, dataAnalyst())

	missing := map[string]bool{}
	for _, s := range ov.MissingSkills {
		missing[Normalize(s)] = true
	}
	for _, s := range ov.MatchingSkills {
		if missing[Normalize(s)] {
			t.Fatalf("skill %q both matching and missing", s)
		}
	}
}

func TestCalculate_MatchingSubsetOfRequired(t *testing.T) {
	r := dataAnalyst()
	required := map[string]bool{}
	for _, s := range r.RequiredSkills() {
		required[Normalize(s)] = true
	}

	ov := Calculate([]string{"python", "Go", "Kubernetes"}, r)
	for _, s := range ov.MatchingSkills {
		if !required[s] {
			t.Fatalf("matching skill %q not in required universe", s)
		}
	}
}

func TestCalculate_MissingCappedAtTen(t *testing.T) {
	r := role.Role{Name: "Everything Engineer"}
	for i := 0; i < 8; i++ {
		r.CoreSkills = append(r.CoreSkills, fmt.Sprintf("core-%d", i))
	}
	for i := 0; i < 8; i++ {
		r.AdvancedSkills = append(r.AdvancedSkills, fmt.Sprintf("adv-%d", i))
	}

	ov := Calculate(nil, r)
	if len(ov.MissingSkills) != MissingSkillsCap {
		t.Fatalf("expected %d missing skills, got %d", MissingSkillsCap, len(ov.MissingSkills))
	}
	// Tier order: all core gaps precede any advanced gap.
	for i := 0; i < 8; i++ {
		if ov.MissingSkills[i] != fmt.Sprintf("core-%d", i) {
			t.Fatalf("expected core-%d at position %d, got %q", i, i, ov.MissingSkills[i])
		}
	}
}

func TestCalculate_NormalizesWhitespaceAndCase(t *testing.T) {
	ov := Calculate([]string{"  PYTHON  ", "sQl "}, dataAnalyst())
	if len(ov.MatchingSkills) != 2 {
		t.Fatalf("expected whitespace/case-insensitive match, got %v", ov.MatchingSkills)
	}
}

func TestCalculate_DuplicateRequiredSkillCountedOnce(t *testing.T) {
	r := role.Role{
		CoreSkills:     []string{"Python"},
		AdvancedSkills: []string{"python"},
	}
	ov := Calculate(nil, r)
	if len(ov.MissingSkills) != 1 {
		t.Fatalf("expected duplicate skill collapsed, got %v", ov.MissingSkills)
	}
}

func TestPartition_Buckets(t *testing.T) {
	r := dataAnalyst()
	ov := Calculate([]string{"Python", "sql"}, r)
	b := Partition(ov.MissingSkills, r)

	if len(b.CoreGaps) != 1 || b.CoreGaps[0] != "Excel" {
		t.Fatalf("unexpected core gaps: %v", b.CoreGaps)
	}
	if len(b.AdvancedGaps) != 1 || b.AdvancedGaps[0] != "Statistics" {
		t.Fatalf("unexpected advanced gaps: %v", b.AdvancedGaps)
	}
	if len(b.ToolGaps) != 1 || b.ToolGaps[0] != "Tableau" {
		t.Fatalf("unexpected tool gaps: %v", b.ToolGaps)
	}
}

func TestPartition_EmptyMissing(t *testing.T) {
	b := Partition(nil, dataAnalyst())
	if len(b.CoreGaps)+len(b.AdvancedGaps)+len(b.ToolGaps) != 0 {
		t.Fatalf("expected empty buckets, got %+v", b)
	}
}
