// internal/core/usecases/grouper.go
package usecases

import (
	"math"
	"sort"

	"clinicor/internal/core/domain"
)

// Grouper performs the first-level clustering pass: greedy clustering
// anchored on the highest-confidence unclustered finding. Reading from the
// most confident observation outward matches the intended clinical reading
// order ("explain away from the most confident observation").
type Grouper struct {
	kb *domain.KnowledgeBase
	th Thresholds
}

// NewGrouper creates a grouper over the given knowledge base.
func NewGrouper(kb *domain.KnowledgeBase, th Thresholds) *Grouper {
	return &Grouper{kb: kb, th: th}
}

// Group partitions the findings into first-level clusters. Every input
// finding lands in exactly one cluster; cluster order is discovery order
// with the anchor (primary) first. The input slice is never mutated, each
// call works on its own copies.
//
// A candidate o joins anchor p's cluster when the types are related and
// either the confidence gap is within the similarity threshold with the
// correlation at or above the correlation threshold, or the correlation
// alone reaches the strong-relation override. Both boundaries inclusive.
func (g *Grouper) Group(findings []*domain.Finding) [][]*domain.Finding {
	if len(findings) == 0 {
		return [][]*domain.Finding{}
	}

	sorted := domain.CloneFindings(findings)
	// Stable: equal confidences keep their input order, that is the
	// defined tie-break.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	assigned := make([]bool, len(sorted))
	clusters := make([][]*domain.Finding, 0, len(sorted))

	for i, p := range sorted {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		cluster := []*domain.Finding{p}

		for j := i + 1; j < len(sorted); j++ {
			if assigned[j] {
				continue
			}
			o := sorted[j]

			rel, ok := g.kb.Resolve(p.Name, o.Name)
			if !ok {
				// No known clinical relationship: treated as independent,
				// never merged.
				continue
			}

			diff := math.Abs(p.Confidence - o.Confidence)
			similar := diff <= g.th.Similarity && rel.Correlation >= g.th.Correlation
			strong := rel.Correlation >= g.th.StrongOverride

			if similar || strong {
				o.Relate(p.Name, rel)
				assigned[j] = true
				cluster = append(cluster, o)
			}
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}
