package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(table.ColorActive))

	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorDim)).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorActive)).
			Bold(true).
			Padding(0, 1)

	SearchLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(table.ColorDim))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorInactive))

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorWarning))

	OkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(table.ColorSuccess)).
		Bold(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorDanger)).
			Bold(true)

	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(table.ColorWarning)).
			Padding(0, 1)

	BadgeGreenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorSuccess)).
			Bold(true)

	BadgeYellowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(table.ColorWarning)).
				Bold(true)

	BadgeRedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(table.ColorDanger)).
			Bold(true)
)
