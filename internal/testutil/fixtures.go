// internal/testutil/fixtures.go
package testutil

import "clinicor/internal/core/domain"

// KnowledgeBase returns a synthetic clinical table set shared by tests.
// Relationships are stored in one orientation only so resolver fallback
// stays exercised. Correlations sit on and around the production
// thresholds (0.65 / 0.75) on purpose.
func KnowledgeBase() *domain.KnowledgeBase {
	return &domain.KnowledgeBase{
		Name: "test-chest-xray",
		Relationships: map[string]map[string]domain.Relationship{
			"Pneumonia": {
				"Infiltration":  {Correlation: 0.85, Hierarchy: domain.HierarchyChild},
				"Consolidation": {Correlation: 0.80, Hierarchy: domain.HierarchyChild},
				"Effusion":      {Correlation: 0.70},
			},
			"Edema": {
				"Cardiomegaly": {Correlation: 0.75, Hierarchy: domain.HierarchyParent},
			},
			"Atelectasis": {
				"Effusion": {Correlation: 0.65},
			},
			"Mass": {
				"Nodule": {Correlation: 0.70, Hierarchy: domain.HierarchyChild},
			},
		},
		Prevalence: map[string]float64{
			"Pneumonia":     0.013,
			"Infiltration":  0.177,
			"Consolidation": 0.042,
			"Effusion":      0.119,
			"Atelectasis":   0.103,
			"Cardiomegaly":  0.025,
			"Edema":         0.021,
			"Mass":          0.052,
			"Nodule":        0.056,
			"Hernia":        0.002,
			"Emphysema":     0.022,
			"Fibrosis":      0.015,
		},
	}
}

// Findings builds a findings slice from name/confidence pairs, in order.
func Findings(pairs ...any) []*domain.Finding {
	out := make([]*domain.Finding, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.NewFinding(pairs[i].(string), pairs[i+1].(float64)))
	}
	return out
}
