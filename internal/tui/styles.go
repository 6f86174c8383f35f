package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/textstyle/internal/theme"
)

// chrome holds the lipgloss styles for the preview's own labels.
type chrome struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style
	Active lipgloss.Style
}

func buildChrome(th theme.Theme) chrome {
	return chrome{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text.Color)).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text.Color)),
		Muted:  lipgloss.NewStyle().Faint(true),
		Active: lipgloss.NewStyle().Reverse(true),
	}
}
