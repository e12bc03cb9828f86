// internal/core/domain/finding.go
package domain

import "fmt"

// Finding represents one disease/condition emitted by the external
// classifier, paired with its confidence. It is the primary data entity
// in clinicor.
type Finding struct {
	// Name is the finding-type identifier, the key into the knowledge base
	Name string `json:"name"`

	// Confidence is the classifier confidence as a fraction [0.0-1.0]
	Confidence float64 `json:"confidence"`

	// Correlation is the strength of the relationship to the group's
	// primary finding. Populated only for non-primary members of a
	// multi-finding group, never present on input.
	Correlation float64 `json:"correlation,omitempty"`

	// IsChild marks this finding as the hierarchical child (clinical
	// sub-type) of the group's primary finding.
	IsChild bool `json:"isChild,omitempty"`

	// ParentDisease names the primary finding when IsChild is set.
	ParentDisease string `json:"parentDisease,omitempty"`
}

// NewFinding creates a raw input finding with no derived annotations.
func NewFinding(name string, confidence float64) *Finding {
	return &Finding{
		Name:       name,
		Confidence: confidence,
	}
}

// Clone returns an independent copy. Ranking annotates member findings in
// place, so every invocation works on its own copies of the input.
func (f *Finding) Clone() *Finding {
	c := *f
	return &c
}

// Relate annotates this finding as a non-primary group member related to
// the given primary. Called exactly once, during first-level grouping.
func (f *Finding) Relate(primary string, rel Relationship) {
	f.Correlation = rel.Correlation
	if rel.Hierarchy == HierarchyChild {
		f.IsChild = true
		f.ParentDisease = primary
	}
}

// IsAnnotated reports whether grouping already attached derived fields.
func (f *Finding) IsAnnotated() bool {
	return f.Correlation != 0 || f.IsChild || f.ParentDisease != ""
}

// String returns a compact human-readable representation.
func (f *Finding) String() string {
	return fmt.Sprintf("%s (%.1f%%)", f.Name, f.Confidence*100)
}

// CloneFindings deep-copies a findings slice.
func CloneFindings(findings []*Finding) []*Finding {
	out := make([]*Finding, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Clone())
	}
	return out
}
