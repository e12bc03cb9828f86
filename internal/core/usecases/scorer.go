// internal/core/usecases/scorer.go
package usecases

import (
	"fmt"
	"math"

	"clinicor/internal/core/domain"
)

// expectedDeltaSlope converts a member's correlation into the confidence
// gap we tolerate before penalizing: strongly correlated findings are
// expected to score close together.
const expectedDeltaSlope = 0.1

// hierarchyBonusWeight scales the bonus for parent/child structure.
const hierarchyBonusWeight = 0.1

// Scorer computes the composite clinical-relevance score and the
// explanation trail for a cluster. Pure function of the cluster and the
// knowledge base; scoring the same cluster twice yields identical results.
type Scorer struct {
	kb *domain.KnowledgeBase
}

// NewScorer creates a scorer over the given knowledge base.
func NewScorer(kb *domain.KnowledgeBase) *Scorer {
	return &Scorer{kb: kb}
}

// Score turns one cluster into a scored Group. The cluster must be
// non-empty (the pipeline never produces empty clusters); nil is returned
// for an empty cluster rather than panicking.
func (s *Scorer) Score(cluster []*domain.Finding) *domain.Group {
	if len(cluster) == 0 {
		return nil
	}
	if len(cluster) == 1 {
		return s.scoreSingle(cluster)
	}
	return s.scoreMulti(cluster)
}

// scoreSingle handles the one-finding case: confidence weighted by how
// common the disease is in the population.
func (s *Scorer) scoreSingle(cluster []*domain.Finding) *domain.Group {
	primary := cluster[0]
	prevalence := s.kb.PrevalenceOf(primary.Name)

	return &domain.Group{
		Diseases: cluster,
		Score:    primary.Confidence * (1 + prevalence),
		Explanation: []string{
			primaryLine(primary),
			fmt.Sprintf("Disease prevalence factor: %.3f", prevalence),
		},
	}
}

// scoreMulti composes the multi-finding score:
//
//	avgConfidence * avgCorrelation
//	  * (1 - confidenceDeltaPenalty)
//	  * (1 + prevalenceScore)
//	  * (1 + hierarchyBonus)
//
// The sub-components are retained on the Group for transparency.
func (s *Scorer) scoreMulti(cluster []*domain.Finding) *domain.Group {
	primary := cluster[0]
	members := cluster[1:]

	var confSum float64
	for _, f := range cluster {
		confSum += f.Confidence
	}
	avgConfidence := confSum / float64(len(cluster))

	// Correlation was populated on every non-primary member during
	// grouping; the penalty tolerates larger gaps for weaker links.
	var corrSum, penaltySum float64
	for _, m := range members {
		corrSum += m.Correlation

		expectedDelta := expectedDeltaSlope * (1 - m.Correlation)
		delta := math.Abs(primary.Confidence-m.Confidence) - expectedDelta
		if delta > 0 {
			penaltySum += delta
		}
	}
	avgCorrelation := corrSum / float64(len(members))
	penalty := penaltySum / float64(len(members))

	var prevSum float64
	for _, f := range cluster {
		prevSum += s.kb.PrevalenceOf(f.Name)
	}
	prevalenceScore := prevSum / float64(len(cluster))

	group := &domain.Group{Diseases: cluster}
	hierarchicalCount := group.ChildCount()
	bonus := 0.0
	if hierarchicalCount > 0 {
		bonus = hierarchyBonusWeight * float64(hierarchicalCount) / float64(len(cluster)-1)
	}

	baseScore := avgConfidence * avgCorrelation
	group.Score = baseScore * (1 - penalty) * (1 + prevalenceScore) * (1 + bonus)
	group.ConfidenceDeltaPenalty = &penalty
	group.PrevalenceScore = &prevalenceScore
	group.HierarchyBonus = &bonus

	explanation := []string{
		primaryLine(primary),
		fmt.Sprintf("Group of %d related findings (%.1f%% average correlation)",
			len(cluster), avgCorrelation*100),
	}
	if penalty > 0 {
		explanation = append(explanation,
			fmt.Sprintf("Confidence inconsistency penalty: %.1f%%", penalty*100))
	}
	if prevalenceScore > 0 {
		explanation = append(explanation,
			fmt.Sprintf("Group prevalence factor: %.3f", prevalenceScore))
	}
	if bonus > 0 {
		explanation = append(explanation,
			fmt.Sprintf("Hierarchical relationship bonus: %.1f%%", bonus*100))
	}
	group.Explanation = explanation

	return group
}

// primaryLine is the first line of every explanation trail.
func primaryLine(primary *domain.Finding) string {
	return fmt.Sprintf("Primary finding: %s (%.1f%% confidence)",
		primary.Name, primary.Confidence*100)
}
