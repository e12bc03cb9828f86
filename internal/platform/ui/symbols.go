// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status is the outcome of analyzing one input file.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusWarning
	StatusError
)

// String converts the status to a readable label.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the Unicode symbol for each status.
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusRunning:
		return "⣾"
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return "?"
	}
}

// Color returns the pterm color for each status.
func (s Status) Color() pterm.Color {
	switch s {
	case StatusPending:
		return pterm.FgGray
	case StatusRunning:
		return pterm.FgCyan
	case StatusSuccess:
		return pterm.FgGreen
	case StatusWarning:
		return pterm.FgYellow
	case StatusError:
		return pterm.FgRed
	default:
		return pterm.FgDefault
	}
}

// Style returns a pterm.Style configured for the status.
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

// Icons for UI elements.
var (
	IconInput    = "📄"
	IconKB       = "📚"
	IconGroups   = "🧩"
	IconTime     = "⏱"
	IconWorkers  = "⚙️"
	IconWarnings = "⚠"
)

// Separators.
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "────────────────────────────────────────────"
)
