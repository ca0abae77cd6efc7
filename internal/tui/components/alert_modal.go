package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// AlertModal is a small dialog with a message and one or more buttons
type AlertModal struct {
	visible  bool
	title    string
	message  string
	buttons  []string
	selected int
}

// NewAlertModal creates a hidden alert
func NewAlertModal() AlertModal {
	return AlertModal{}
}

// Show displays the alert; the first button is preselected
func (m *AlertModal) Show(title, message string, buttons ...string) {
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}
	m.visible = true
	m.title = title
	m.message = message
	m.buttons = buttons
	m.selected = 0
}

// Hide dismisses the alert
func (m *AlertModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the alert is shown
func (m AlertModal) IsVisible() bool {
	return m.visible
}

// Message returns the alert message
func (m AlertModal) Message() string {
	return m.message
}

// Buttons returns the button labels
func (m AlertModal) Buttons() []string {
	return m.buttons
}

// Update handles input events, returns (modal, cmd, chosen button index or -1)
func (m AlertModal) Update(msg tea.Msg) (AlertModal, tea.Cmd, int) {
	if !m.visible {
		return m, nil, -1
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, -1
	}

	switch {
	case key.Matches(keyMsg, AlertKeys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, AlertKeys.Right):
		if m.selected < len(m.buttons)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, AlertKeys.Confirm):
		choice := m.selected
		m.Hide()
		return m, nil, choice
	case key.Matches(keyMsg, AlertKeys.Dismiss):
		m.Hide()
		return m, nil, 0
	}

	return m, nil, -1
}

// View renders the alert
func (m AlertModal) View() string {
	if !m.visible {
		return ""
	}

	buttons := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		style := styles.ButtonStyle
		if i == m.selected {
			style = styles.ButtonActiveStyle
		}
		buttons[i] = style.Render(b)
		if i < len(m.buttons)-1 {
			buttons[i] += " "
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		lipgloss.NewStyle().Foreground(styles.LightGray).Width(40).Render(m.message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)

	return styles.ModalStyle.Render(content)
}
