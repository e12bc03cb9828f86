// internal/core/domain/group.go
package domain

// Group is the engine's output unit: one or more findings merged because
// of clinical relatedness, with a composite relevance score and a
// human-readable explanation trail.
type Group struct {
	// Diseases ordered members, primary (highest original confidence) first.
	// Order is significant for scoring and must be preserved.
	Diseases []*Finding `json:"diseases"`

	// Score composite clinical-relevance score. Unbounded positive real,
	// not a probability.
	Score float64 `json:"score"`

	// ConfidenceDeltaPenalty scoring sub-component, multi-finding groups only
	ConfidenceDeltaPenalty *float64 `json:"confidenceDeltaPenalty,omitempty"`

	// PrevalenceScore scoring sub-component, multi-finding groups only
	PrevalenceScore *float64 `json:"prevalenceScore,omitempty"`

	// HierarchyBonus scoring sub-component, multi-finding groups only
	HierarchyBonus *float64 `json:"hierarchyBonus,omitempty"`

	// Explanation ordered rationale lines documenting which rules produced
	// the score. Informational only, never re-parsed.
	Explanation []string `json:"explanation"`
}

// Primary returns the group's anchor finding.
func (g *Group) Primary() *Finding {
	if len(g.Diseases) == 0 {
		return nil
	}
	return g.Diseases[0]
}

// Size returns the number of member findings.
func (g *Group) Size() int {
	return len(g.Diseases)
}

// ChildCount counts members annotated as hierarchical children.
func (g *Group) ChildCount() int {
	n := 0
	for _, f := range g.Diseases {
		if f.IsChild || f.ParentDisease != "" {
			n++
		}
	}
	return n
}
