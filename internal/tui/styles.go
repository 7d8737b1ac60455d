package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Header lipgloss.Style
	Movie  lipgloss.Style
	Best   lipgloss.Style
	Muted  lipgloss.Style
	Link   lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bd93f9")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8f8f2")),
		Movie: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f8f2")),
		Best: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50fa7b")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd")).
			Underline(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")),
	}
}
