// Package taxonomy defines the RoleColor categories and their keyword tables.
// The table is an immutable configuration value so tests and callers can
// substitute smaller keyword sets.
package taxonomy

import "fmt"

// Category is one of the four RoleColor behavioral archetypes.
type Category string

// The four RoleColor categories, in definition order. Definition order is
// the tie-break order for dominant-category selection.
const (
	Builder   Category = "Builder"
	Thriver   Category = "Thriver"
	Enabler   Category = "Enabler"
	Supportee Category = "Supportee"
)

// Categories returns all categories in definition order.
func Categories() []Category {
	return []Category{Builder, Thriver, Enabler, Supportee}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case Builder, Thriver, Enabler, Supportee:
		return true
	}
	return false
}

// Definition returns a one-line description of the archetype, used in
// rewrite prompts and API documentation.
func (c Category) Definition() string {
	switch c {
	case Builder:
		return "vision, architecture, strategy, innovation, long-term thinking"
	case Thriver:
		return "fast execution, ownership under pressure, ambiguity, shipping"
	case Enabler:
		return "cross-functional alignment, coordination, stakeholder bridging"
	case Supportee:
		return "reliability, stability, documentation, quality, operational excellence"
	}
	return ""
}

// Taxonomy maps each category to its ordered keyword/phrase list.
// Keyword order matters: it is the tie-break order when ranking signals.
type Taxonomy struct {
	keywords map[Category][]string
}

// New builds a Taxonomy from the given keyword lists. Unknown category
// names are rejected. The input map is copied; the Taxonomy does not alias
// caller memory.
func New(keywords map[Category][]string) (*Taxonomy, error) {
	copied := make(map[Category][]string, len(keywords))
	for cat, kws := range keywords {
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category %q", cat)
		}
		list := make([]string, len(kws))
		copy(list, kws)
		copied[cat] = list
	}
	return &Taxonomy{keywords: copied}, nil
}

// Keywords returns the keyword list for a category, in definition order.
// The returned slice must not be modified.
func (t *Taxonomy) Keywords(c Category) []string {
	return t.keywords[c]
}

// defaultKeywords is the built-in RoleColor keyword framework.
var defaultKeywords = map[Category][]string{
	Builder: {
		"strategy", "vision", "innovation", "architect", "architecture", "system design", "design",
		"scalable", "scalability", "platform", "framework", "prototype", "research", "model", "modeling", "algorithm",
	},
	Thriver: {
		"fast-paced", "rapid", "quickly", "deadline", "deadlines", "under pressure", "ambiguous", "ambiguity",
		"ownership", "accountable", "deliver", "delivered", "shipped", "ship", "launch", "launched", "execution",
		"urgent", "iterate", "iteration", "iterative", "go-live",
	},
	Enabler: {
		"collaborate", "collaborated", "collaboration", "cross-functional", "partner", "partnering",
		"stakeholder", "stakeholders", "align", "alignment", "coordinate", "coordination",
		"communicate", "communication", "influence", "facilitate", "facilitation", "consensus",
		"bridge", "unblock", "unblocked", "requirements", "translate", "mentor", "mentorship", "coaching", "enablement",
	},
	Supportee: {
		"reliability", "reliable", "maintain", "maintained", "maintenance", "monitoring", "observability",
		"incident", "on-call", "uptime", "stability", "stable", "documentation", "documented", "runbook",
		"testing", "tests", "quality", "compliance", "security", "refactor", "refactoring",
		"performance", "optimize", "optimized", "optimization", "best practices", "reproducible", "migration",
	},
}

// Default returns the built-in RoleColor taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultKeywords)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in taxonomy: %v", err))
	}
	return t
}
