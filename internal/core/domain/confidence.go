// internal/core/domain/confidence.go
package domain

// Confidence bands for classifier output.
// Used only for display; the engine itself never thresholds on these.
const (
	// ConfidenceLow indicates a weak classifier signal.
	ConfidenceLow float64 = 0.3

	// ConfidenceMedium indicates a moderate classifier signal.
	ConfidenceMedium float64 = 0.6

	// ConfidenceHigh indicates a strong classifier signal.
	ConfidenceHigh float64 = 0.8
)

// ConfidenceLabel returns a human-readable band for a confidence value.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence >= ConfidenceHigh:
		return "high"
	case confidence >= ConfidenceMedium:
		return "medium"
	case confidence >= ConfidenceLow:
		return "low"
	default:
		return "minimal"
	}
}
