// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clinicor/internal/core/domain"
	"clinicor/internal/core/ports"
	"clinicor/internal/platform/errors"
	"clinicor/internal/platform/registry"
)

func init() {
	registry.Global().MustRegister("json", func() (ports.Exporter, error) {
		return NewJSONExporter(), nil
	})
}

// JSONExporter serializes ranked reports. With an output directory it
// writes a timestamped file per report; otherwise it streams to stdout.
type JSONExporter struct{}

// NewJSONExporter creates the exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Name returns the exporter name.
func (e *JSONExporter) Name() string {
	return "json"
}

// Export writes the report according to the options.
func (e *JSONExporter) Export(report *domain.AnalysisReport, opts ports.ExportOptions) error {
	if opts.OutputDir == "" {
		return e.ExportToWriter(report, os.Stdout, opts)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrExportFailed, err.Error())
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("clinicor_%s_%s.json", sanitizeInputName(report.Input), timestamp)
	path := filepath.Join(opts.OutputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrExportFailed, err.Error())
	}
	defer f.Close()

	return e.ExportToWriter(report, f, opts)
}

// ExportToWriter writes the report to a custom writer.
func (e *JSONExporter) ExportToWriter(report *domain.AnalysisReport, w io.Writer, opts ports.ExportOptions) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(applyOptions(report, opts)); err != nil {
		return errors.Wrap(errors.ErrExportFailed, err.Error())
	}
	return nil
}

// applyOptions returns a shallow view of the report with excluded
// sections removed. The report itself is never mutated.
func applyOptions(report *domain.AnalysisReport, opts ports.ExportOptions) *domain.AnalysisReport {
	view := *report
	if !opts.IncludeFindings {
		view.Findings = nil
	}
	if !opts.IncludeWarnings {
		view.Warnings = nil
	}
	if !opts.IncludeExplanations {
		groups := make([]*domain.Group, 0, len(report.Groups))
		for _, g := range report.Groups {
			gv := *g
			gv.Explanation = nil
			groups = append(groups, &gv)
		}
		view.Groups = groups
	}
	return &view
}

// sanitizeInputName turns an input label into a safe file-name fragment.
// Example: "scans/patient_12.json" -> "patient_12_json".
func sanitizeInputName(input string) string {
	base := filepath.Base(input)
	if base == "-" || base == "." || base == "" {
		base = "stdin"
	}
	base = strings.ReplaceAll(base, ".", "_")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, base)
}
