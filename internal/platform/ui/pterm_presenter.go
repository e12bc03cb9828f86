// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"clinicor/internal/core/domain"
)

// PTermPresenter implements Presenter using the pterm library for
// spinners, colors and boxed panels on the terminal.
type PTermPresenter struct {
	mu sync.Mutex

	spinners  map[string]*pterm.SpinnerPrinter
	startTime time.Time
}

// NewPTermPresenter creates a pterm-backed presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		spinners: make(map[string]*pterm.SpinnerPrinter),
	}
}

// Start renders the run header with configuration details.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Clinicor - Clinical Finding Correlation")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	content := fmt.Sprintf("%s Inputs: %s\n", IconInput, pterm.Cyan(strings.Join(info.Inputs, ", ")))
	content += fmt.Sprintf("%s Knowledge base: %s\n", IconKB, pterm.Yellow(info.KnowledgeBase))
	content += fmt.Sprintf("%s Top groups: %d\n", IconGroups, info.TopN)
	content += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	content += fmt.Sprintf("   Formats: %s", strings.Join(info.Formats, ", "))

	panel.Println(content)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()
}

// StartFile opens a spinner for an input file.
func (p *PTermPresenter) StartFile(location string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
		Start(fmt.Sprintf("  %s Analyzing %s...",
			StatusRunning.Symbol(),
			pterm.Cyan(location),
		))

	p.spinners[location] = spinner
}

// FinishFile replaces the file spinner with a final status line.
func (p *PTermPresenter) FinishFile(location string, status Status, duration time.Duration, groupCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if spinner, exists := p.spinners[location]; exists {
		spinner.Stop()
		delete(p.spinners, location)
	}

	line := fmt.Sprintf("  %s %s (%s)", status.Symbol(), status.Style().Sprint(location), formatDuration(duration))
	if status == StatusSuccess || status == StatusWarning {
		line += fmt.Sprintf(" %s %s groups", IconGroups, pterm.Cyan(fmt.Sprintf("%d", groupCount)))
	}
	status.Style().Println(line)
}

// ShowReport renders the ranked groups of one analysis.
func (p *PTermPresenter) ShowReport(report *domain.AnalysisReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Println(fmt.Sprintf("Ranked Groups: %s", report.Input))

	if len(report.Groups) == 0 {
		pterm.Info.Println("No groups produced.")
		return
	}

	tableData := pterm.TableData{
		{"Rank", "Primary", "Score", "Members", "Confidence"},
	}
	for i, g := range report.Groups {
		primary := g.Primary()
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			primary.Name,
			fmt.Sprintf("%.3f", g.Score),
			groupMembers(g),
			domain.ConfidenceLabel(primary.Confidence),
		})
	}

	pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData).
		Render()

	for i, g := range report.Groups {
		pterm.Println(pterm.Gray(fmt.Sprintf("  Group %d:", i+1)))
		for _, line := range g.Explanation {
			pterm.Println(pterm.Gray("    - " + line))
		}
	}
}

// Info prints an informational message.
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning prints a warning.
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error prints an error.
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Finish renders the closing summary panel.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, spinner := range p.spinners {
		spinner.Stop()
	}

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Analysis Completed")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	content := fmt.Sprintf("%s Total Duration: %s\n", IconTime, pterm.Green(formatDuration(stats.TotalDuration)))
	content += fmt.Sprintf("%s Files Analyzed: %s\n", IconInput, pterm.Cyan(fmt.Sprintf("%d", stats.FilesAnalyzed)))
	content += fmt.Sprintf("   Findings: %s\n", pterm.Yellow(fmt.Sprintf("%d", stats.TotalFindings)))
	content += fmt.Sprintf("%s Groups: %s", IconGroups, pterm.Green(fmt.Sprintf("%d", stats.TotalGroups)))

	if stats.TotalWarnings > 0 {
		content += fmt.Sprintf("\n%s Warnings: %s", IconWarnings, pterm.Yellow(fmt.Sprintf("%d", stats.TotalWarnings)))
	}
	if stats.FilesFailed > 0 {
		content += fmt.Sprintf("\n%s Files Failed: %s", StatusError.Symbol(), pterm.Red(fmt.Sprintf("%d", stats.FilesFailed)))
	}

	panel.Println(content)
	pterm.Println()
}

// Close stops any remaining spinners.
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, spinner := range p.spinners {
		spinner.Stop()
	}
	p.spinners = make(map[string]*pterm.SpinnerPrinter)
	return nil
}

// groupMembers renders members after the primary, marking children.
func groupMembers(g *domain.Group) string {
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

// formatDuration renders a duration compactly.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
