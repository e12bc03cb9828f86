// internal/core/usecases/thresholds.go
package usecases

// Default grouping parameters. All of them are overridable via config so
// tests and deployments can tune the clustering without code changes.
const (
	// DefaultSimilarityThreshold is the maximum confidence gap for the
	// similarity merge rule.
	DefaultSimilarityThreshold = 0.03

	// DefaultCorrelationThreshold is the minimum correlation required to
	// merge findings or clusters.
	DefaultCorrelationThreshold = 0.65

	// DefaultStrongRelationOverride merges two findings regardless of their
	// confidence gap. A correlation this strong is clinically decisive.
	DefaultStrongRelationOverride = 0.75

	// DefaultTopN is the number of groups a ranking returns.
	DefaultTopN = 3
)

// Thresholds bundles the grouping parameters. All boundaries are inclusive.
type Thresholds struct {
	// Similarity maximum |confidence(p) - confidence(o)| for the first rule
	Similarity float64

	// Correlation minimum relationship strength for both merge rules
	Correlation float64

	// StrongOverride correlation that merges regardless of confidence gap
	StrongOverride float64
}

// DefaultThresholds returns the production parameters.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Similarity:     DefaultSimilarityThreshold,
		Correlation:    DefaultCorrelationThreshold,
		StrongOverride: DefaultStrongRelationOverride,
	}
}
