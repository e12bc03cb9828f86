// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"clinicor/internal/core/domain"
	"clinicor/internal/core/ports"
	"clinicor/internal/platform/errors"
	"clinicor/internal/platform/registry"
)

func init() {
	registry.Global().MustRegister("table", func() (ports.Exporter, error) {
		return NewTableExporter(), nil
	})
}

// TableExporter renders a ranked report as a terminal table.
type TableExporter struct{}

// NewTableExporter creates the exporter.
func NewTableExporter() *TableExporter {
	return &TableExporter{}
}

// Name returns the exporter name.
func (e *TableExporter) Name() string {
	return "table"
}

// Export renders to stdout. OutputDir is ignored: tables are for humans.
func (e *TableExporter) Export(report *domain.AnalysisReport, opts ports.ExportOptions) error {
	return e.ExportToWriter(report, os.Stdout, opts)
}

// ExportToWriter renders the report to a custom writer.
func (e *TableExporter) ExportToWriter(report *domain.AnalysisReport, w io.Writer, opts ports.ExportOptions) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Clinical Finding Correlation ===\n")
	fmt.Fprintf(tw, "Input:\t%s\n", report.Input)
	fmt.Fprintf(tw, "Knowledge base:\t%s\n", report.Metadata.KnowledgeBase)
	fmt.Fprintf(tw, "Findings:\t%d\n", len(report.Findings))
	fmt.Fprintf(tw, "Groups:\t%d (top %d)\n\n", len(report.Groups), report.Metadata.TopN)

	if len(report.Groups) > 0 {
		fmt.Fprintln(tw, "RANK\tPRIMARY\tSCORE\tMEMBERS\tCONFIDENCE")
		fmt.Fprintln(tw, "----\t-------\t-----\t-------\t----------")

		for i, g := range report.Groups {
			primary := g.Primary()
			fmt.Fprintf(tw, "%d\t%s\t%.3f\t%s\t%s\n",
				i+1,
				primary.Name,
				g.Score,
				memberList(g),
				domain.ConfidenceLabel(primary.Confidence),
			)
		}
	} else {
		fmt.Fprintln(tw, "No groups to report.")
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(errors.ErrExportFailed, err.Error())
	}

	if opts.IncludeExplanations {
		for i, g := range report.Groups {
			fmt.Fprintf(w, "\nGroup %d rationale:\n", i+1)
			for _, line := range g.Explanation {
				fmt.Fprintf(w, "  - %s\n", line)
			}
		}
	}

	if opts.IncludeWarnings && len(report.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(report.Warnings))
		for i, warning := range report.Warnings {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, warning.Source, warning.Message)
		}
	}

	fmt.Fprintln(w)
	return nil
}

// memberList renders group members after the primary, marking children.
func memberList(g *domain.Group) string {
	if g.Size() == 1 {
		return "-"
	}
	parts := make([]string, 0, g.Size()-1)
	for _, f := range g.Diseases[1:] {
		name := f.Name
		if f.IsChild {
			name += " (child)"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}
