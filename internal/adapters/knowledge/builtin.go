// internal/adapters/knowledge/builtin.go
package knowledge

import "clinicor/internal/core/domain"

// BuiltinSource serves the compiled-in chest X-ray knowledge base.
// Correlations and hierarchy tags reflect common radiological reading
// practice; prevalence rates approximate reported population frequencies
// for the fourteen standard chest X-ray labels.
type BuiltinSource struct{}

// NewBuiltinSource creates the compiled-in source.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// Name returns the source name.
func (s *BuiltinSource) Name() string {
	return "builtin"
}

// Load builds the chest X-ray table set. Relationships are stored once
// per pair; the resolver checks both orientations.
func (s *BuiltinSource) Load() (*domain.KnowledgeBase, error) {
	kb := &domain.KnowledgeBase{
		Name: "builtin-chest-xray",
		Relationships: map[string]map[string]domain.Relationship{
			"Pneumonia": {
				"Infiltration":  {Correlation: 0.85, Hierarchy: domain.HierarchyChild},
				"Consolidation": {Correlation: 0.80, Hierarchy: domain.HierarchyChild},
				"Effusion":      {Correlation: 0.70},
				"Edema":         {Correlation: 0.68},
			},
			"Cardiomegaly": {
				"Edema":    {Correlation: 0.78, Hierarchy: domain.HierarchyChild},
				"Effusion": {Correlation: 0.66},
			},
			"Effusion": {
				"Atelectasis": {Correlation: 0.66},
				"Mass":        {Correlation: 0.65},
			},
			"Mass": {
				"Nodule": {Correlation: 0.82, Hierarchy: domain.HierarchyChild},
			},
			"Consolidation": {
				"Infiltration": {Correlation: 0.75},
			},
			"Emphysema": {
				"Pneumothorax": {Correlation: 0.72},
			},
			"Fibrosis": {
				"Pleural Thickening": {Correlation: 0.60},
			},
			"Atelectasis": {
				"Pneumothorax": {Correlation: 0.58},
			},
		},
		Prevalence: map[string]float64{
			"Infiltration":       0.177,
			"Effusion":           0.119,
			"Atelectasis":        0.103,
			"Nodule":             0.056,
			"Mass":               0.052,
			"Pneumothorax":       0.047,
			"Consolidation":      0.042,
			"Pleural Thickening": 0.030,
			"Cardiomegaly":       0.025,
			"Emphysema":          0.022,
			"Edema":              0.021,
			"Fibrosis":           0.015,
			"Pneumonia":          0.013,
			"Hernia":             0.002,
		},
	}

	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return kb, nil
}
