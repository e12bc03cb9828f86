// internal/core/usecases/merger.go
package usecases

import "clinicor/internal/core/domain"

// Merger is the multi-level pass: first-level clusters that are
// cross-linked through any member-pair relationship get concatenated.
type Merger struct {
	kb *domain.KnowledgeBase
	th Thresholds
}

// NewMerger creates a merger over the given knowledge base.
func NewMerger(kb *domain.KnowledgeBase, th Thresholds) *Merger {
	return &Merger{kb: kb, th: th}
}

// Merge runs a single forward pass over the clusters. When any pair
// (a in C, b in D) resolves with correlation at or above the correlation
// threshold, D's findings are concatenated onto C and D is consumed.
//
// This is deliberately NOT a fixed-point transitive closure: a cluster
// already passed over is never revisited, even if a later absorption
// would now link it. Member ordering within each surviving cluster keeps
// the first-level primary-first order, in absorption order.
func (m *Merger) Merge(clusters [][]*domain.Finding) [][]*domain.Finding {
	if len(clusters) <= 1 {
		return clusters
	}

	absorbed := make([]bool, len(clusters))
	out := make([][]*domain.Finding, 0, len(clusters))

	for i := range clusters {
		if absorbed[i] {
			continue
		}
		current := append([]*domain.Finding{}, clusters[i]...)

		for j := i + 1; j < len(clusters); j++ {
			if absorbed[j] {
				continue
			}
			if m.related(current, clusters[j]) {
				current = append(current, clusters[j]...)
				absorbed[j] = true
			}
		}

		out = append(out, current)
	}

	return out
}

// related reports whether any member pair across the two clusters has a
// known relationship at or above the correlation threshold.
func (m *Merger) related(c, d []*domain.Finding) bool {
	for _, a := range c {
		for _, b := range d {
			if rel, ok := m.kb.Resolve(a.Name, b.Name); ok && rel.Correlation >= m.th.Correlation {
				return true
			}
		}
	}
	return false
}
