package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.SearchBar.View(),
		"",
		m.renderBody(),
	)

	// Pin the footer to the bottom row
	gap := m.Height - lipgloss.Height(view) - 1
	if gap > 0 {
		view += strings.Repeat("\n", gap)
	}
	view = lipgloss.JoinVertical(lipgloss.Left, view, m.renderFooter())

	if m.Alert.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Alert.View())
	}

	return view
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("kickoff")
	sub := styles.DimStyle.Render("  leagues & teams search")
	return title + sub
}

// renderBody renders the area under the search bar for the current phase
func (m Model) renderBody() string {
	if m.Focus == FocusDetail {
		return m.Inspector.View()
	}

	switch {
	case m.state.IsLoading():
		return m.Spinner.View() + " " + styles.DimStyle.Render(loadingMessage)
	case m.state.IsFailed():
		return styles.ErrorStyle.Render(loadFailedMessage)
	case m.state.IsLoaded():
		if m.Results.Len() == 0 {
			return styles.DimStyle.Render(emptyMessage)
		}
		return m.Results.View(m.Focus == FocusResults)
	default:
		return styles.DimStyle.Render(idleMessage)
	}
}

// renderFooter renders a single-line footer with hints for the focused area
func (m Model) renderFooter() string {
	var left string
	switch m.Focus {
	case FocusResults:
		if m.Results.IsFiltering() {
			left = styles.RenderHelp(
				[2]string{"enter", "accept"},
				[2]string{"esc", "clear filter"},
			)
		} else {
			left = styles.RenderHelp(
				[2]string{"enter", "details"},
				[2]string{"/", "filter"},
				[2]string{"esc", "search"},
				[2]string{"q", "quit"},
			)
		}
	case FocusDetail:
		left = styles.RenderHelp(
			[2]string{"esc", "back"},
			[2]string{"q", "quit"},
		)
	default:
		pairs := [][2]string{
			{"enter", "search"},
			{"tab", "category"},
			{"C-x", "clear"},
		}
		if len(m.SearchBar.Suggestions()) > 0 {
			pairs = append(pairs, [2]string{"C-r", "recent"})
		}
		if m.Results.VisibleCount() > 0 {
			pairs = append(pairs, [2]string{"↓", "results"})
		}
		pairs = append(pairs, [2]string{"C-c", "quit"})
		left = styles.RenderHelp(pairs...)
	}

	if m.StatusMsg == "" {
		return left
	}

	right := styles.ErrorStyle.Render(styles.Truncate(m.StatusMsg, max(m.Width/3, 10)))
	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
