// internal/platform/ui/noop_presenter.go
package ui

import (
	"time"

	"clinicor/internal/core/domain"
)

// NoopPresenter is an empty Presenter implementation that produces no
// output. Used for quiet mode and in tests.
type NoopPresenter struct{}

// NewNoopPresenter creates a presenter without output.
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)        {}
func (n *NoopPresenter) StartFile(location string) {}
func (n *NoopPresenter) FinishFile(location string, status Status, duration time.Duration, groupCount int) {
}
func (n *NoopPresenter) ShowReport(report *domain.AnalysisReport) {}
func (n *NoopPresenter) Info(msg string)                          {}
func (n *NoopPresenter) Warning(msg string)                       {}
func (n *NoopPresenter) Error(msg string)                         {}
func (n *NoopPresenter) Finish(stats RunStats)                    {}
func (n *NoopPresenter) Close() error                             { return nil }
