// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"clinicor/internal/core/domain"
)

// UIMode selects how much terminal output the run produces.
type UIMode string

const (
	UIModeCompact UIMode = "compact" // header, per-file status and summary (default)
	UIModeQuiet   UIMode = "quiet"   // no visual UI, exporters only
)

// Presenter renders the progress of a ranking run on the terminal. The
// application drives it; implementations decide how (or whether) to draw.
type Presenter interface {
	// Start opens the presentation with run-level information
	Start(info RunInfo)

	// StartFile announces that an input file is being analyzed
	StartFile(location string)

	// FinishFile reports the outcome of one input file
	FinishFile(location string, status Status, duration time.Duration, groupCount int)

	// ShowReport renders the ranked groups of a finished analysis
	ShowReport(report *domain.AnalysisReport)

	// Info prints an informational message
	Info(msg string)

	// Warning prints a warning
	Warning(msg string)

	// Error prints an error
	Error(msg string)

	// Finish closes the presentation with aggregate statistics
	Finish(stats RunStats)

	// Close releases presenter resources
	Close() error
}

// RunInfo describes a ranking run before it starts.
type RunInfo struct {
	Inputs        []string
	KnowledgeBase string
	TopN          int
	Workers       int
	Formats       []string
}

// RunStats aggregates the outcome of a ranking run.
type RunStats struct {
	TotalDuration time.Duration
	FilesAnalyzed int
	FilesFailed   int
	TotalFindings int
	TotalGroups   int
	TotalWarnings int
}

// ForMode returns the presenter matching the requested UI mode.
func ForMode(mode UIMode) Presenter {
	if mode == UIModeQuiet {
		return NewNoopPresenter()
	}
	return NewPTermPresenter()
}
