package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/search"
	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// Image markers shown at the start of each row
const (
	imageMarker       = "◉"
	placeholderMarker = "○"
)

// ResultsListAction reports what a key press asked the app to do
type ResultsListAction int

const (
	ResultsListNone ResultsListAction = iota
	ResultsListOpen
	ResultsListBack
)

// ResultsList shows loaded results with cursor navigation and a local filter
type ResultsList struct {
	results []domain.SearchResult
	index   *search.FilterIndex
	visible []search.FilterResult

	cursor int
	offset int

	filtering   bool // Filter input is active
	filterInput textinput.Model

	width  int
	height int
}

// NewResultsList creates an empty list
func NewResultsList() ResultsList {
	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.FilterPromptStyle
	fi.Placeholder = "filter"
	fi.PlaceholderStyle = styles.DimStyle
	fi.CharLimit = 50

	return ResultsList{
		filterInput: fi,
		index:       search.NewFilterIndex(nil),
	}
}

// SetResults replaces the list contents and clears the filter
func (l *ResultsList) SetResults(results []domain.SearchResult) {
	l.results = results
	l.index = search.NewFilterIndex(results)
	l.filterInput.SetValue("")
	l.filtering = false
	l.filterInput.Blur()
	l.applyFilter()
}

// Len returns the number of results before filtering
func (l ResultsList) Len() int {
	return len(l.results)
}

// VisibleCount returns the number of results after filtering
func (l ResultsList) VisibleCount() int {
	return len(l.visible)
}

// FilterQuery returns the active filter text
func (l ResultsList) FilterQuery() string {
	return l.filterInput.Value()
}

// IsFiltering reports whether the filter input has focus
func (l ResultsList) IsFiltering() bool {
	return l.filtering
}

// Selected returns the result under the cursor
func (l ResultsList) Selected() (domain.SearchResult, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return domain.SearchResult{}, false
	}
	return l.visible[l.cursor].Result, true
}

// SetSize updates the component dimensions
func (l *ResultsList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = max(width-6, 10)
	l.ensureVisible()
}

func (l *ResultsList) applyFilter() {
	l.visible = l.index.Filter(l.filterInput.Value())
	l.cursor = 0
	l.offset = 0
}

// pageSize is the number of rows that fit
func (l ResultsList) pageSize() int {
	rows := l.height
	if l.filtering || l.filterInput.Value() != "" {
		rows-- // filter line
	}
	return max(rows, 1)
}

func (l *ResultsList) ensureVisible() {
	page := l.pageSize()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *ResultsList) moveCursor(delta int) {
	if len(l.visible) == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), len(l.visible)-1)
	l.ensureVisible()
}

// Update handles messages while the list is focused
func (l ResultsList) Update(msg tea.Msg) (ResultsList, tea.Cmd, ResultsListAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if l.filtering {
			var cmd tea.Cmd
			l.filterInput, cmd = l.filterInput.Update(msg)
			return l, cmd, ResultsListNone
		}
		return l, nil, ResultsListNone
	}

	if l.filtering {
		return l.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, ResultsListKeys.Up):
		l.moveCursor(-1)
	case key.Matches(keyMsg, ResultsListKeys.Down):
		l.moveCursor(1)
	case key.Matches(keyMsg, ResultsListKeys.Home):
		l.moveCursor(-len(l.visible))
	case key.Matches(keyMsg, ResultsListKeys.End):
		l.moveCursor(len(l.visible))
	case key.Matches(keyMsg, ResultsListKeys.PageUp):
		l.moveCursor(-l.pageSize())
	case key.Matches(keyMsg, ResultsListKeys.PageDown):
		l.moveCursor(l.pageSize())
	case key.Matches(keyMsg, ResultsListKeys.Filter):
		l.filtering = true
		return l, l.filterInput.Focus(), ResultsListNone
	case key.Matches(keyMsg, ResultsListKeys.Enter):
		if _, ok := l.Selected(); ok {
			return l, nil, ResultsListOpen
		}
	case key.Matches(keyMsg, ResultsListKeys.Escape):
		if l.filterInput.Value() != "" {
			l.filterInput.SetValue("")
			l.applyFilter()
			return l, nil, ResultsListNone
		}
		return l, nil, ResultsListBack
	}

	return l, nil, ResultsListNone
}

func (l ResultsList) updateFilter(keyMsg tea.KeyMsg) (ResultsList, tea.Cmd, ResultsListAction) {
	switch {
	case key.Matches(keyMsg, ResultsListKeys.Escape):
		l.filtering = false
		l.filterInput.Blur()
		l.filterInput.SetValue("")
		l.applyFilter()
		return l, nil, ResultsListNone
	case key.Matches(keyMsg, ResultsListKeys.Enter):
		l.filtering = false
		l.filterInput.Blur()
		return l, nil, ResultsListNone
	case keyMsg.Type == tea.KeyUp, keyMsg.Type == tea.KeyDown:
		if keyMsg.Type == tea.KeyUp {
			l.moveCursor(-1)
		} else {
			l.moveCursor(1)
		}
		return l, nil, ResultsListNone
	}

	before := l.filterInput.Value()
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(keyMsg)
	if l.filterInput.Value() != before {
		l.applyFilter()
	}
	return l, cmd, ResultsListNone
}

// View renders the list; focused controls the cursor highlight
func (l ResultsList) View(focused bool) string {
	var lines []string

	if l.filtering || l.filterInput.Value() != "" {
		lines = append(lines, l.filterInput.View())
	}

	if len(l.visible) == 0 && l.filterInput.Value() != "" {
		lines = append(lines, styles.DimStyle.Render("No matches."))
		return strings.Join(lines, "\n")
	}

	page := l.pageSize()
	end := min(l.offset+page, len(l.visible))
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.visible[i], focused && i == l.cursor))
	}

	return strings.Join(lines, "\n")
}

func (l ResultsList) renderRow(fr search.FilterResult, selected bool) string {
	r := fr.Result

	marker := styles.DimStyle.Render(placeholderMarker)
	if _, ok := r.PrimaryImagePath(); ok {
		marker = styles.AccentStyle.Render(imageMarker)
	}

	desc := r.GetDescription()
	nameWidth := max(l.width-lipgloss.Width(desc)-6, 10)
	name := styles.Truncate(r.Name, nameWidth)

	base := styles.NormalItemStyle
	highlight := styles.MatchHighlightStyle
	if selected {
		base = styles.SelectedItemStyle
		highlight = styles.MatchHighlightSelectedStyle
	}

	renderedName := renderHighlighted(name, r.Name, fr.MatchedIndexes, base, highlight)
	gap := max(l.width-lipgloss.Width(name)-lipgloss.Width(desc)-4, 1)

	descStyle := styles.DimStyle
	if selected {
		descStyle = descStyle.Background(styles.SlateLight)
	}

	return marker + " " + renderedName + base.Render(strings.Repeat(" ", gap)) + descStyle.Render(desc)
}

// renderHighlighted styles matched bytes of name. Offsets refer to the
// lowercased original; highlighting is skipped when lowercasing changed
// byte lengths or the name was truncated.
func renderHighlighted(name, original string, matched []int, base, highlight lipgloss.Style) string {
	if len(matched) == 0 || name != original || len(strings.ToLower(original)) != len(original) {
		return base.Render(name)
	}

	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range name {
		if set[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
