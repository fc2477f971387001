package ui

import (
	"github.com/charmbracelet/lipgloss"

	"ringlet/internal/gradient"
)

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Percent  lipgloss.Style
	Message  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Faint    lipgloss.Style
	Box      lipgloss.Style
	Spinner  lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:    base.Bold(true).Foreground(lipgloss.Color(gradient.LightPurple)),
		Subtitle: base.Faint(true),
		Percent:  base.Bold(true).Foreground(lipgloss.Color(gradient.White)),
		Message:  base.Foreground(lipgloss.Color("#D1D5DB")),
		Success:  base.Foreground(lipgloss.Color("#22C55E")),
		Error:    base.Foreground(lipgloss.Color("#EF4444")),
		Faint:    base.Faint(true),
		Box:      base.Padding(0, 1),
		Spinner:  base.Foreground(lipgloss.Color(gradient.LightPurple)),
	}
}
