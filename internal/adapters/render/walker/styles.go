package walker

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	section   lipgloss.Style
	walk      lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	badge     lipgloss.Style
	startable lipgloss.Style
	warning   lipgloss.Style
	starFill  lipgloss.Style
	starEmpty lipgloss.Style
	meta      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:   lipgloss.NewStyle().MarginTop(1),
		walk:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:     lipgloss.NewStyle().Faint(true),
		badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		startable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		starFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		starEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
