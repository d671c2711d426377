package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Score bands
	ScoreHigh lipgloss.Style
	ScoreMid  lipgloss.Style
	ScoreLow  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Prompt    lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconWarning string
	IconSuccess string
	IconArrow   string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.ScoreHigh = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		s.ScoreMid = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		s.ScoreLow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))             // Cyan
		s.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconSuccess = "✓"
		s.IconArrow = "→"
	} else {
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.ScoreHigh = lipgloss.NewStyle()
		s.ScoreMid = lipgloss.NewStyle()
		s.ScoreLow = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Prompt = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
		s.IconArrow = "->"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Score picks the band style for a score in [0, 1]
func (s *Styles) Score(v float64) lipgloss.Style {
	switch {
	case v >= 0.8:
		return s.ScoreHigh
	case v >= 0.6:
		return s.ScoreMid
	default:
		return s.ScoreLow
	}
}
