package market

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	item      lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	warning   lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	pageFaint lipgloss.Style
	pageHere  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		pageFaint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		pageHere:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

func statusStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
