// internal/core/domain/fixtures_test.go
package domain

// Helper functions for tests in this package only

// fixtureKnowledgeBase returns a small synthetic table set. Relationships
// are stored in one orientation only, which is what the resolver tests need.
func fixtureKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		Name: "test-kb",
		Relationships: map[string]map[string]Relationship{
			"Pneumonia": {
				"Infiltration":  {Correlation: 0.85, Hierarchy: HierarchyChild},
				"Consolidation": {Correlation: 0.80, Hierarchy: HierarchyChild},
				"Effusion":      {Correlation: 0.70},
			},
			"Edema": {
				"Cardiomegaly": {Correlation: 0.75, Hierarchy: HierarchyParent},
			},
		},
		Prevalence: map[string]float64{
			"Pneumonia":    0.014,
			"Infiltration": 0.177,
			"Effusion":     0.119,
			"Hernia":       0.002,
		},
	}
}

// fixtureFindings returns raw classifier output in arbitrary order.
func fixtureFindings() []*Finding {
	return []*Finding{
		NewFinding("Infiltration", 0.78),
		NewFinding("Pneumonia", 0.80),
		NewFinding("Hernia", 0.40),
	}
}
