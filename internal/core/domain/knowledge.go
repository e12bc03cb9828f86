// internal/core/domain/knowledge.go
package domain

import "fmt"

// KnowledgeBase holds the static clinical tables the engine consults:
// pairwise finding-type relationships and per-type base prevalence rates.
// It is read-only after construction, so concurrent rankings may share it.
type KnowledgeBase struct {
	// Name identifies the table set (e.g. "builtin-chest-xray")
	Name string `json:"name" yaml:"name"`

	// Relationships maps findingA -> findingB -> relationship. Stored once
	// per unordered pair, in an arbitrary orientation.
	Relationships map[string]map[string]Relationship `json:"relationships" yaml:"relationships"`

	// Prevalence maps finding type -> population base rate [0.0-1.0]
	Prevalence map[string]float64 `json:"prevalence" yaml:"prevalence"`
}

// Resolve looks up the relationship between two finding types, checking
// both orderings since the table is stored asymmetrically. The entry is
// returned exactly as stored: the hierarchy tag must not be flipped by a
// normalization step, its meaning depends on which side holds it.
// The second return is false when the types have no known relationship.
func (kb *KnowledgeBase) Resolve(typeA, typeB string) (Relationship, bool) {
	if inner, ok := kb.Relationships[typeA]; ok {
		if rel, ok := inner[typeB]; ok {
			return rel, true
		}
	}
	if inner, ok := kb.Relationships[typeB]; ok {
		if rel, ok := inner[typeA]; ok {
			return rel, true
		}
	}
	return Relationship{}, false
}

// PrevalenceOf returns the base rate for a finding type. Unknown types
// default to 0, which simply removes the prevalence weighting.
func (kb *KnowledgeBase) PrevalenceOf(name string) float64 {
	return kb.Prevalence[name]
}

// Knows reports whether the finding type appears in any table, on either
// side of a relationship or in the prevalence rates.
func (kb *KnowledgeBase) Knows(name string) bool {
	if _, ok := kb.Relationships[name]; ok {
		return true
	}
	if _, ok := kb.Prevalence[name]; ok {
		return true
	}
	for _, inner := range kb.Relationships {
		if _, ok := inner[name]; ok {
			return true
		}
	}
	return false
}

// RelationshipCount returns the number of stored directed entries.
func (kb *KnowledgeBase) RelationshipCount() int {
	n := 0
	for _, inner := range kb.Relationships {
		n += len(inner)
	}
	return n
}

// Validate checks table ranges and hierarchy tags.
func (kb *KnowledgeBase) Validate() error {
	for a, inner := range kb.Relationships {
		if a == "" {
			return fmt.Errorf("%w: empty finding name in relationships", ErrInvalidTable)
		}
		for b, rel := range inner {
			if b == "" {
				return fmt.Errorf("%w: empty related finding name under %q", ErrInvalidTable, a)
			}
			if rel.Correlation < 0 || rel.Correlation > 1 {
				return fmt.Errorf("%w: correlation %v for %s/%s outside [0,1]",
					ErrInvalidTable, rel.Correlation, a, b)
			}
			if !rel.Hierarchy.IsValid() {
				return fmt.Errorf("%w: hierarchy %q for %s/%s", ErrInvalidTable, rel.Hierarchy, a, b)
			}
		}
	}
	for name, rate := range kb.Prevalence {
		if name == "" {
			return fmt.Errorf("%w: empty finding name in prevalence", ErrInvalidTable)
		}
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%w: prevalence %v for %s outside [0,1]", ErrInvalidTable, rate, name)
		}
	}
	return nil
}
