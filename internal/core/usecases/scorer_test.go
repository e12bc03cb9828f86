// internal/core/usecases/scorer_test.go
package usecases

import (
	"testing"

	"clinicor/internal/core/domain"
	"clinicor/internal/testutil"
)

// relatedCluster builds a scored-ready cluster: primary first, members
// annotated the way the grouper would have.
func relatedCluster(primary *domain.Finding, members ...*domain.Finding) []*domain.Finding {
	return append([]*domain.Finding{primary}, members...)
}

func member(name string, confidence float64, rel domain.Relationship, primary string) *domain.Finding {
	f := domain.NewFinding(name, confidence)
	f.Relate(primary, rel)
	return f
}

func TestScoreSingleFinding(t *testing.T) {
	// Hernia at 40% with prevalence 0.002: score = 0.40 * 1.002.
	s := NewScorer(testutil.KnowledgeBase())

	g := s.Score(relatedCluster(domain.NewFinding("Hernia", 0.40)))

	testutil.AssertInDelta(t, g.Score, 0.4008, 1e-12, "single-finding score")
	testutil.AssertStringsEqual(t, g.Explanation, []string{
		"Primary finding: Hernia (40.0% confidence)",
		"Disease prevalence factor: 0.002",
	}, "explanation trail")
	if g.ConfidenceDeltaPenalty != nil || g.PrevalenceScore != nil || g.HierarchyBonus != nil {
		t.Error("single-finding groups carry no scoring sub-components")
	}
}

func TestScoreSingleUnknownPrevalence(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())

	g := s.Score(relatedCluster(domain.NewFinding("NotInAnyTable", 0.55)))

	testutil.AssertInDelta(t, g.Score, 0.55, 1e-12, "unknown prevalence defaults to 0")
	testutil.AssertEqual(t, g.Explanation[1], "Disease prevalence factor: 0.000", "prevalence line")
}

func TestScoreSingleMonotonicInConfidence(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())

	low := s.Score(relatedCluster(domain.NewFinding("Hernia", 0.40)))
	high := s.Score(relatedCluster(domain.NewFinding("Hernia", 0.41)))

	if high.Score <= low.Score {
		t.Errorf("score must strictly increase with confidence: %v <= %v", high.Score, low.Score)
	}
}

func TestScoreMultiFindingComposition(t *testing.T) {
	// Pneumonia 0.80 + Infiltration 0.78 (corr 0.85, child):
	//   avgConfidence       = 0.79
	//   avgCorrelation      = 0.85
	//   penalty             = max(0, 0.02 - 0.1*(1-0.85)) = 0.005
	//   prevalenceScore     = (0.013 + 0.177) / 2 = 0.095
	//   hierarchyBonus      = 0.1 * (1 / 1) = 0.1
	//   score               = 0.79*0.85 * 0.995 * 1.095 * 1.1
	s := NewScorer(testutil.KnowledgeBase())
	cluster := relatedCluster(
		domain.NewFinding("Pneumonia", 0.80),
		member("Infiltration", 0.78, domain.Relationship{Correlation: 0.85, Hierarchy: domain.HierarchyChild}, "Pneumonia"),
	)

	g := s.Score(cluster)

	testutil.AssertInDelta(t, g.Score, 0.80477764125, 1e-9, "composite score")
	testutil.AssertNotNil(t, g.ConfidenceDeltaPenalty, "penalty sub-component")
	testutil.AssertInDelta(t, *g.ConfidenceDeltaPenalty, 0.005, 1e-12, "penalty")
	testutil.AssertInDelta(t, *g.PrevalenceScore, 0.095, 1e-12, "prevalence score")
	testutil.AssertInDelta(t, *g.HierarchyBonus, 0.1, 1e-12, "hierarchy bonus")

	testutil.AssertStringsEqual(t, g.Explanation, []string{
		"Primary finding: Pneumonia (80.0% confidence)",
		"Group of 2 related findings (85.0% average correlation)",
		"Confidence inconsistency penalty: 0.5%",
		"Group prevalence factor: 0.095",
		"Hierarchical relationship bonus: 10.0%",
	}, "explanation trail")
}

func TestScoreMultiIdenticalConfidencesNoPenalty(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())
	cluster := relatedCluster(
		domain.NewFinding("Pneumonia", 0.70),
		member("Effusion", 0.70, domain.Relationship{Correlation: 0.70}, "Pneumonia"),
	)

	g := s.Score(cluster)

	testutil.AssertEqual(t, *g.ConfidenceDeltaPenalty, 0.0, "identical confidences yield no penalty")
	for _, line := range g.Explanation {
		if line == "Confidence inconsistency penalty: 0.0%" {
			t.Error("zero penalty must not produce an explanation line")
		}
	}
}

func TestScoreMultiNoHierarchyNoBonusLine(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())
	cluster := relatedCluster(
		domain.NewFinding("Pneumonia", 0.70),
		member("Effusion", 0.69, domain.Relationship{Correlation: 0.70}, "Pneumonia"),
	)

	g := s.Score(cluster)

	testutil.AssertEqual(t, *g.HierarchyBonus, 0.0, "no children, no bonus")
	for _, line := range g.Explanation {
		if line == "Hierarchical relationship bonus: 0.0%" {
			t.Error("zero bonus must not produce an explanation line")
		}
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())
	cluster := relatedCluster(
		domain.NewFinding("Pneumonia", 0.80),
		member("Infiltration", 0.78, domain.Relationship{Correlation: 0.85, Hierarchy: domain.HierarchyChild}, "Pneumonia"),
	)

	first := s.Score(cluster)
	second := s.Score(cluster)

	if first.Score != second.Score {
		t.Errorf("scoring must be bit-identical across calls: %v vs %v", first.Score, second.Score)
	}
	testutil.AssertStringsEqual(t, second.Explanation, first.Explanation, "explanations identical")
}

func TestScoreEmptyClusterReturnsNil(t *testing.T) {
	s := NewScorer(testutil.KnowledgeBase())

	if s.Score(nil) != nil {
		t.Error("empty cluster is a precondition violation, expect nil")
	}
}
