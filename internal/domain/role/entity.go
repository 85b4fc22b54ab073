package role

// Role is one catalogued job description from the knowledge base. Roles are
// immutable after load; role_name is the unique key.
type Role struct {
	Name             string   `json:"role_name"`
	Category         string   `json:"category"`
	ExperienceLevel  string   `json:"experience_level"`
	Summary          string   `json:"role_summary"`
	CoreSkills       []string `json:"core_skills"`
	AdvancedSkills   []string `json:"advanced_skills"`
	Tools            []string `json:"tools_and_technologies"`
	Responsibilities []string `json:"responsibilities"`

	// ProgressionPath is the preferred explicit form; Progression keeps
	// the legacy "A → B → C" string for catalogues that predate it.
	ProgressionPath []string `json:"career_progression_path"`
	Progression     string   `json:"career_progression"`

	SalaryBand string `json:"salary_band"`
}

// RequiredSkills is the union of the three skill tiers in a stable order:
// core, then advanced, then tools, each in declaration order.
func (r Role) RequiredSkills() []string {
	out := make([]string, 0, len(r.CoreSkills)+len(r.AdvancedSkills)+len(r.Tools))
	out = append(out, r.CoreSkills...)
	out = append(out, r.AdvancedSkills...)
	out = append(out, r.Tools...)
	return out
}
