package gap

import (
	"strings"

	"career-compass/internal/domain/role"
)

// MissingSkillsCap bounds the missing-skills list on every overlap result.
const MissingSkillsCap = 10

type Overlap struct {
	// MatchingSkills holds normalized (lowercased, trimmed) tokens.
	MatchingSkills []string
	// MissingSkills keeps the role's original casing, capped at
	// MissingSkillsCap entries in tier order (core, advanced, tools).
	MissingSkills []string
}

type Buckets struct {
	CoreGaps     []string
	AdvancedGaps []string
	ToolGaps     []string
}

// Normalize lowercases and trims a skill token for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Calculate compares a candidate skill set against a role's required skills.
// Both sides are compared case-insensitively; duplicates collapse.
func Calculate(candidateSkills []string, r role.Role) Overlap {
	candidate := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		candidate[n] = struct{}{}
	}

	matching := make([]string, 0)
	missing := make([]string, 0)
	seen := make(map[string]struct{})

	for _, skill := range r.RequiredSkills() {
		n := Normalize(skill)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		if _, ok := candidate[n]; ok {
			matching = append(matching, n)
			continue
		}
		if len(missing) < MissingSkillsCap {
			missing = append(missing, strings.TrimSpace(skill))
		}
	}

	return Overlap{MatchingSkills: matching, MissingSkills: missing}
}

// Partition splits an already-capped missing list into the role's three
// priority tiers by case-insensitive membership.
func Partition(missing []string, r role.Role) Buckets {
	missingSet := make(map[string]struct{}, len(missing))
	for _, s := range missing {
		missingSet[Normalize(s)] = struct{}{}
	}

	pick := func(tier []string) []string {
		out := make([]string, 0, len(tier))
		for _, s := range tier {
			if _, ok := missingSet[Normalize(s)]; ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}

	return Buckets{
		CoreGaps:     pick(r.CoreSkills),
		AdvancedGaps: pick(r.AdvancedSkills),
		ToolGaps:     pick(r.Tools),
	}
}
