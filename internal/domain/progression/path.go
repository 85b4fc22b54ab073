// Package progression parses the knowledge base's career-progression field
// into an ordered list of successor role names.
package progression

import "strings"

// Delimiter separates role names in the legacy free-text form.
const Delimiter = "→"

// Parse splits "Junior Developer → Senior Developer → Lead Developer" into
// its ordered segments, trimming whitespace and dropping empties. A
// non-empty value without the delimiter is a single-step path.
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.Contains(s, Delimiter) {
		return []string{s}
	}

	parts := strings.Split(s, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
