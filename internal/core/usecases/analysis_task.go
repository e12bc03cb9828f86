// internal/core/usecases/analysis_task.go
package usecases

import (
	"context"

	"clinicor/internal/core/domain"
	"clinicor/internal/core/ports"
	"clinicor/internal/platform/errors"
	"clinicor/internal/platform/logx"
)

// AnalysisTask ranks one classifier output end to end: read the findings,
// run the pipeline, export the report. It implements workerpool.Task so a
// batch of files can be processed concurrently. Rankings share only the
// read-only knowledge base, so tasks need no coordination.
type AnalysisTask struct {
	// Location of the classifier output ("-" for stdin)
	Location string

	// Reader loads the findings
	Reader ports.FindingReader

	// Service is the shared ranking pipeline
	Service *RankingService

	// Exporters receive the finished report, in order
	Exporters []ports.Exporter

	// Options passed to every exporter
	Options ports.ExportOptions

	// Logger for task-level events
	Logger logx.Logger

	// OnReport, when set, observes the finished report (UI hook)
	OnReport func(*domain.AnalysisReport)
}

// Name returns the task name.
func (t *AnalysisTask) Name() string {
	return t.Location
}

// Priority returns the task priority. Analyses are uniform; all equal.
func (t *AnalysisTask) Priority() int {
	return 0
}

// Weight returns the estimated cost. Rankings are O(n²) over n < 20
// findings; every file costs the same for scheduling purposes.
func (t *AnalysisTask) Weight() int {
	return 1
}

// Execute runs the task.
func (t *AnalysisTask) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	findings, warnings, err := t.Reader.Read(t.Location)
	if err != nil {
		return errors.Wrapf(err, "reading %s", t.Location)
	}

	for _, w := range warnings {
		t.Logger.Warn("input warning", "input", t.Location, "message", w.Message)
	}

	report := t.Service.Analyze(t.Location, findings, warnings)

	for _, exp := range t.Exporters {
		if err := exp.Export(report, t.Options); err != nil {
			return errors.Wrapf(err, "exporting %s via %s", t.Location, exp.Name())
		}
	}

	if t.OnReport != nil {
		t.OnReport(report)
	}

	return nil
}
