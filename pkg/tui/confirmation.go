package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message     string   // Main confirmation message
	Warning     string   // Optional warning text (shown in orange)
	Details     []string // Optional detail lines
	Destructive bool     // If true, Yes is red, No is green
	YesLabel    string   // Custom label for Yes (default: "Sim")
	NoLabel     string   // Custom label for No (default: "Não")
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Sim"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "Não"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "s", "S", "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.config.Message)
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(m.config.Warning))
	}
	for _, detail := range m.config.Details {
		b.WriteString("\n  ")
		b.WriteString(detail)
	}

	yes := m.config.YesLabel
	no := m.config.NoLabel
	if m.config.Destructive {
		yes = DangerStyle.Render(yes)
		no = OkStyle.Render(no)
	} else {
		yes = OkStyle.Render(yes)
		no = DangerStyle.Render(no)
	}
	b.WriteString("\n")
	b.WriteString(yes + " (s)  " + no + " (n)")

	return ConfirmBoxStyle.Render(b.String())
}
