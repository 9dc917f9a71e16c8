// SPDX-License-Identifier: MIT

package report

import "github.com/charmbracelet/lipgloss"

var (
	colorFound   = lipgloss.Color("#10b981") // green-500
	colorMissing = lipgloss.Color("#ef4444") // red-500
	colorDim     = lipgloss.Color("#6b7280") // gray-500
	colorAccent  = lipgloss.Color("#3b82f6") // blue-500
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Actor   lipgloss.Style
	Movie   lipgloss.Style
	Number  lipgloss.Style
	Missing lipgloss.Style
	Dim     lipgloss.Style
	Label   lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() *Styles {
	return &Styles{
		Actor:   lipgloss.NewStyle().Bold(true),
		Movie:   lipgloss.NewStyle().Foreground(colorAccent).Italic(true),
		Number:  lipgloss.NewStyle().Foreground(colorFound).Bold(true),
		Missing: lipgloss.NewStyle().Foreground(colorMissing).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(colorDim),
		Label:   lipgloss.NewStyle().Foreground(colorDim),
	}
}
