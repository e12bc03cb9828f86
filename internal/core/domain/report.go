// internal/core/domain/report.go
package domain

import "time"

// AnalysisReport represents the complete result of ranking one classifier
// output: the raw findings, the ranked groups, non-fatal warnings and run
// metadata. It is the unit the output adapters serialize.
type AnalysisReport struct {
	// ID unique identifier of the analysis run
	ID string `json:"id"`

	// Input labels where the findings came from (file name, "stdin", ...)
	Input string `json:"input"`

	// Findings raw classifier output as received
	Findings []*Finding `json:"findings"`

	// Groups ranked result, highest score first, at most topN entries
	Groups []*Group `json:"groups"`

	// Warnings non-fatal input issues detected before ranking
	Warnings []Warning `json:"warnings,omitempty"`

	// Metadata information about the run
	Metadata AnalysisMetadata `json:"metadata"`
}

// AnalysisMetadata contains information about the execution of a ranking run.
type AnalysisMetadata struct {
	// StartTime moment the analysis started
	StartTime time.Time `json:"start_time"`

	// EndTime moment the analysis finished
	EndTime time.Time `json:"end_time"`

	// Duration total wall time of the analysis
	Duration time.Duration `json:"duration"`

	// KnowledgeBase name of the table set used
	KnowledgeBase string `json:"knowledge_base"`

	// TopN requested maximum number of groups
	TopN int `json:"top_n"`

	// SimilarityThreshold confidence-gap threshold used for grouping
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// CorrelationThreshold minimum correlation used for grouping/merging
	CorrelationThreshold float64 `json:"correlation_threshold"`

	// StrongRelationOverride correlation that merges regardless of gap
	StrongRelationOverride float64 `json:"strong_relation_override"`

	// Version clinicor version that produced the report
	Version string `json:"version"`
}

// Warning represents a non-critical issue detected while reading input.
type Warning struct {
	// Source component that raised the warning
	Source string `json:"source"`

	// Message description of the warning
	Message string `json:"message"`

	// Timestamp moment of the warning
	Timestamp time.Time `json:"timestamp"`
}

// NewWarning creates a warning stamped with the current time.
func NewWarning(source, message string) Warning {
	return Warning{
		Source:    source,
		Message:   message,
		Timestamp: time.Now(),
	}
}
