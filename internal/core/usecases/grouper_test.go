// internal/core/usecases/grouper_test.go
package usecases

import (
	"testing"

	"clinicor/internal/testutil"
)

func TestGroupRelatedFindingsMerge(t *testing.T) {
	// Pneumonia/Infiltration: diff 0.02 <= 0.03 and corr 0.85 >= 0.65.
	findings := testutil.Findings("Pneumonia", 0.80, "Infiltration", 0.78)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	cluster := clusters[0]
	if len(cluster) != 2 || cluster[0].Name != "Pneumonia" {
		t.Fatalf("primary must be the higher-confidence finding, got %v", cluster)
	}

	member := cluster[1]
	testutil.AssertEqual(t, member.Name, "Infiltration", "member name")
	testutil.AssertEqual(t, member.Correlation, 0.85, "member correlation")
	testutil.AssertTrue(t, member.IsChild, "Infiltration is tagged child of Pneumonia")
	testutil.AssertEqual(t, member.ParentDisease, "Pneumonia", "parent disease")
}

func TestGroupUnrelatedStaySeparate(t *testing.T) {
	// No relationship in either direction (scenario: Hernia vs Emphysema).
	findings := testutil.Findings("Hernia", 0.40, "Emphysema", 0.41)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 2 {
		t.Fatalf("unrelated findings must never merge, got %d clusters", len(clusters))
	}
}

func TestGroupSimilarityRuleBoundaries(t *testing.T) {
	kb := testutil.KnowledgeBase()

	// Atelectasis/Effusion sit exactly on the 0.65 correlation threshold;
	// a confidence gap within the similarity threshold must merge.
	within := testutil.Findings("Atelectasis", 0.62, "Effusion", 0.60)
	clusters := NewGrouper(kb, DefaultThresholds()).Group(within)
	if len(clusters) != 1 {
		t.Error("corr == threshold with diff within similarity must merge")
	}

	// Gap just past the threshold must not merge via the similarity rule,
	// and 0.65 < 0.75 so the strong override does not apply either.
	far := testutil.Findings("Atelectasis", 0.6301, "Effusion", 0.60)
	clusters = NewGrouper(kb, DefaultThresholds()).Group(far)
	if len(clusters) != 2 {
		t.Error("diff above similarity threshold must not merge at corr 0.65")
	}
}

func TestGroupSimilarityBoundaryInclusive(t *testing.T) {
	// Exactly representable values pin the <= comparison: diff is exactly
	// equal to the similarity threshold and still merges.
	th := Thresholds{Similarity: 0.03125, Correlation: 0.65, StrongOverride: 0.75}
	findings := testutil.Findings("Atelectasis", 0.78125, "Effusion", 0.75)

	clusters := NewGrouper(testutil.KnowledgeBase(), th).Group(findings)

	if len(clusters) != 1 {
		t.Error("diff exactly at the similarity threshold must merge (inclusive)")
	}
}

func TestGroupStrongOverrideIgnoresConfidenceGap(t *testing.T) {
	// Edema/Cardiomegaly correlation is exactly 0.75: the override is
	// inclusive and merges despite a 0.5 confidence gap.
	findings := testutil.Findings("Edema", 0.90, "Cardiomegaly", 0.40)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 1 {
		t.Fatal("strong correlation must merge regardless of confidence gap")
	}
	member := clusters[0][1]
	testutil.AssertEqual(t, member.Correlation, 0.75, "member correlation")
	// Tag is "parent" as stored, so the member is not marked as a child.
	testutil.AssertTrue(t, !member.IsChild, "parent-tagged member is not a child")
}

func TestGroupBelowOverrideWithWideGapStaysApart(t *testing.T) {
	// Pneumonia/Effusion corr 0.70: above the correlation threshold but
	// below the override, so a wide gap keeps them apart.
	findings := testutil.Findings("Pneumonia", 0.90, "Effusion", 0.40)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 2 {
		t.Error("corr in [0.65, 0.75) with a wide gap must not merge")
	}
}

func TestGroupIsAPartition(t *testing.T) {
	findings := testutil.Findings(
		"Pneumonia", 0.80,
		"Infiltration", 0.78,
		"Hernia", 0.40,
		"Emphysema", 0.41,
		"Effusion", 0.79,
	)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	counts := make(map[string]int)
	total := 0
	for _, cluster := range clusters {
		for _, f := range cluster {
			counts[f.Name]++
			total++
		}
	}
	testutil.AssertEqual(t, total, len(findings), "every finding appears exactly once")
	for _, f := range findings {
		testutil.AssertEqual(t, counts[f.Name], 1, "occurrences of "+f.Name)
	}
}

func TestGroupStableTieBreak(t *testing.T) {
	// Equal confidences keep input order: Hernia listed first anchors the
	// first cluster even though Emphysema has the same confidence.
	findings := testutil.Findings("Hernia", 0.40, "Emphysema", 0.40)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	testutil.AssertEqual(t, clusters[0][0].Name, "Hernia", "first cluster anchor")
	testutil.AssertEqual(t, clusters[1][0].Name, "Emphysema", "second cluster anchor")
}

func TestGroupDoesNotMutateInput(t *testing.T) {
	findings := testutil.Findings("Pneumonia", 0.80, "Infiltration", 0.78)
	NewGrouper(testutil.KnowledgeBase(), DefaultThresholds()).Group(findings)

	for _, f := range findings {
		if f.IsAnnotated() {
			t.Errorf("input finding %s was mutated", f.Name)
		}
	}
}

func TestGroupEmptyInput(t *testing.T) {
	clusters := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds()).Group(nil)

	if len(clusters) != 0 {
		t.Errorf("empty input must yield no clusters, got %d", len(clusters))
	}
}

func TestGroupAnchorsOnHighestConfidence(t *testing.T) {
	// Input order must not matter for anchoring: Infiltration arrives
	// first but Pneumonia has the higher confidence.
	findings := testutil.Findings("Infiltration", 0.78, "Pneumonia", 0.80)
	g := NewGrouper(testutil.KnowledgeBase(), DefaultThresholds())

	clusters := g.Group(findings)

	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	testutil.AssertEqual(t, clusters[0][0].Name, "Pneumonia", "anchor")
}
