// internal/core/ports/exporter.go
package ports

import (
	"io"

	"clinicor/internal/core/domain"
)

// Exporter is the port for writing ranked reports in different formats.
type Exporter interface {
	// Name returns the exporter name (e.g. "json", "table")
	Name() string

	// Export writes the report according to the options.
	Export(report *domain.AnalysisReport, opts ExportOptions) error
}

// WriterExporter additionally exports to an arbitrary io.Writer.
type WriterExporter interface {
	Exporter

	// ExportToWriter writes the report to a custom writer.
	ExportToWriter(report *domain.AnalysisReport, w io.Writer, opts ExportOptions) error
}

// ExportOptions configures an export.
type ExportOptions struct {
	// OutputDir directory for file-based exporters (empty = stdout)
	OutputDir string

	// Pretty indicates human-oriented formatting where the format allows it
	Pretty bool

	// IncludeFindings includes the raw input findings in the output
	IncludeFindings bool

	// IncludeWarnings includes input warnings in the output
	IncludeWarnings bool

	// IncludeExplanations includes per-group rationale lines
	IncludeExplanations bool
}

// DefaultExportOptions returns the options used when none are given.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		OutputDir:           "",
		Pretty:              true,
		IncludeFindings:     true,
		IncludeWarnings:     true,
		IncludeExplanations: true,
	}
}

// ExporterFactory creates an Exporter instance.
type ExporterFactory func() (Exporter, error)
