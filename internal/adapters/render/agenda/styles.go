package agenda

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	item     lipgloss.Style
	course   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	dueSoon  lipgloss.Style
	dueLater lipgloss.Style
	noDue    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		course:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		dueSoon:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		dueLater: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noDue:    lipgloss.NewStyle().Faint(true),
	}
}
