// Package knowledgebase loads the read-only role catalogue consumed by the
// recommendation engine. The catalogue lives in a JSON document with a
// top-level "roles" array; a missing file degrades to an empty catalogue so
// the service keeps answering with no matches instead of crashing.
package knowledgebase

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"sort"
	"sync/atomic"

	"career-compass/internal/domain/role"
)

// ErrMissing reports an absent knowledge base document. Callers are
// expected to log it and continue with an empty catalogue.
var ErrMissing = errors.New("knowledge base not found")

type document struct {
	Roles []role.Role `json:"roles"`
}

// Catalogue is an immutable snapshot of the loaded roles.
type Catalogue struct {
	roles  []role.Role
	byName map[string]role.Role
}

// NewCatalogue builds an immutable snapshot from a role list. Exposed for
// callers that assemble catalogues without a backing document.
func NewCatalogue(roles []role.Role) *Catalogue {
	return newCatalogue(roles)
}

func newCatalogue(roles []role.Role) *Catalogue {
	byName := make(map[string]role.Role, len(roles))
	for _, r := range roles {
		if r.Name == "" {
			continue
		}
		byName[r.Name] = r
	}
	return &Catalogue{roles: roles, byName: byName}
}

func (c *Catalogue) Roles() []role.Role {
	if c == nil {
		return nil
	}
	return c.roles
}

func (c *Catalogue) RoleByName(name string) (role.Role, bool) {
	if c == nil {
		return role.Role{}, false
	}
	r, ok := c.byName[name]
	return r, ok
}

func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.roles)
}

// SkillsByTier returns every unique skill per tier, sorted.
func (c *Catalogue) SkillsByTier() (core, advanced, tools []string) {
	coreSet := map[string]struct{}{}
	advSet := map[string]struct{}{}
	toolSet := map[string]struct{}{}

	for _, r := range c.Roles() {
		for _, s := range r.CoreSkills {
			coreSet[s] = struct{}{}
		}
		for _, s := range r.AdvancedSkills {
			advSet[s] = struct{}{}
		}
		for _, s := range r.Tools {
			toolSet[s] = struct{}{}
		}
	}

	return sortedKeys(coreSet), sortedKeys(advSet), sortedKeys(toolSet)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Store holds the current catalogue behind an atomic pointer so Reload can
// swap it without disturbing in-flight readers.
type Store struct {
	path    string
	logger  *log.Logger
	current atomic.Pointer[Catalogue]
}

// NewStore loads the catalogue at path. On ErrMissing the returned store is
// still usable (empty catalogue) and the condition is logged; any other
// read or decode failure is fatal to the caller.
func NewStore(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{path: path, logger: logger}

	if err := s.Reload(); err != nil {
		if errors.Is(err, ErrMissing) {
			logger.Printf("[KnowledgeBase] not found at %s, continuing with empty catalogue", path)
			s.current.Store(newCatalogue(nil))
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

// Reload re-reads the document and atomically swaps the catalogue.
func (s *Store) Reload() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrMissing
		}
		return err
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	cat := newCatalogue(doc.Roles)
	s.current.Store(cat)
	s.logger.Printf("[KnowledgeBase] loaded %d roles from %s", cat.Len(), s.path)
	return nil
}

// Catalogue returns the current snapshot. Never nil.
func (s *Store) Catalogue() *Catalogue {
	if s == nil {
		return newCatalogue(nil)
	}
	c := s.current.Load()
	if c == nil {
		return newCatalogue(nil)
	}
	return c
}
