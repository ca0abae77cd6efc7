package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// SearchBarAction reports what a key press asked the app to do
type SearchBarAction int

const (
	SearchBarNone SearchBarAction = iota
	SearchBarSubmit
	SearchBarCategoryChanged
	SearchBarCleared
	SearchBarEdited
)

// maxSuggestions shown under the input
const maxSuggestions = 3

// SearchBar is the text input plus the category segmented picker
type SearchBar struct {
	input       textinput.Model
	category    domain.Category
	suggestions []string
	width       int
}

// NewSearchBar creates a search bar starting on the given category
func NewSearchBar(category domain.Category) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search leagues and teams"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return SearchBar{
		input:    ti,
		category: category,
	}
}

// Focus focuses the text input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the text input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the typed text, untrimmed
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the typed text and moves the cursor to the end
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// Category returns the selected category
func (s SearchBar) Category() domain.Category {
	return s.category
}

// SetCategory selects a category
func (s *SearchBar) SetCategory(c domain.Category) {
	s.category = c
}

// SetSuggestions replaces the recent-search suggestions
func (s *SearchBar) SetSuggestions(suggestions []string) {
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	s.suggestions = suggestions
}

// Suggestions returns the visible suggestions
func (s SearchBar) Suggestions() []string {
	return s.suggestions
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-8, 10)
}

// Update handles messages while the input is focused
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, SearchBarAction) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, SearchBarKeys.Submit):
			return s, nil, SearchBarSubmit

		case key.Matches(keyMsg, SearchBarKeys.NextCategory):
			s.category = s.category.Next()
			return s, nil, SearchBarCategoryChanged

		case key.Matches(keyMsg, SearchBarKeys.PrevCategory):
			s.category = s.category.Prev()
			return s, nil, SearchBarCategoryChanged

		case key.Matches(keyMsg, SearchBarKeys.Clear):
			s.input.SetValue("")
			s.suggestions = nil
			return s, nil, SearchBarCleared

		case key.Matches(keyMsg, SearchBarKeys.Suggest):
			if len(s.suggestions) == 0 {
				return s, nil, SearchBarNone
			}
			s.SetValue(s.suggestions[0])
			return s, nil, SearchBarEdited
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		return s, cmd, SearchBarEdited
	}
	return s, cmd, SearchBarNone
}

// View renders the input, the picker and any suggestions
func (s SearchBar) View() string {
	border := styles.InactiveBorder
	if s.input.Focused() {
		border = styles.ActiveBorder
	}

	inputBox := border.Width(max(s.width-2, 20)).Render(s.input.View())

	lines := []string{inputBox, s.renderPicker()}

	if s.input.Focused() && len(s.suggestions) > 0 {
		lines = append(lines, styles.DimStyle.Render("recent: ")+
			styles.SubtitleStyle.Render(strings.Join(s.suggestions, "  ·  ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s SearchBar) renderPicker() string {
	cats := domain.Categories()
	segments := make([]string, len(cats))
	for i, c := range cats {
		if c == s.category {
			segments[i] = styles.SegmentActiveStyle.Render(c.String())
		} else {
			segments[i] = styles.SegmentStyle.Render(c.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}
