package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/domain"
)

func press(kt tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: kt} }

func TestAlertModalChoice(t *testing.T) {
	m := NewAlertModal()
	_, _, choice := m.Update(press(tea.KeyEnter))
	require.Equal(t, -1, choice, "hidden alert ignores keys")

	m.Show("Error", "boom", "OK", "Try again")
	require.True(t, m.IsVisible())

	m, _, choice = m.Update(press(tea.KeyRight))
	require.Equal(t, -1, choice)
	m, _, choice = m.Update(press(tea.KeyRight)) // clamps at the last button
	require.Equal(t, -1, choice)

	m, _, choice = m.Update(press(tea.KeyEnter))
	require.Equal(t, 1, choice)
	require.False(t, m.IsVisible())
}

func TestAlertModalEscapeDismisses(t *testing.T) {
	m := NewAlertModal()
	m.Show("Search", "too short")
	require.Equal(t, []string{"OK"}, m.Buttons())

	m, _, choice := m.Update(press(tea.KeyEsc))
	require.Equal(t, 0, choice)
	require.False(t, m.IsVisible())
}

func TestSearchBarCategoryCycle(t *testing.T) {
	s := NewSearchBar(domain.CategoryAll)

	s, _, action := s.Update(press(tea.KeyTab))
	require.Equal(t, SearchBarCategoryChanged, action)
	require.Equal(t, domain.CategoryLeagues, s.Category())

	s, _, _ = s.Update(press(tea.KeyShiftTab))
	s, _, _ = s.Update(press(tea.KeyShiftTab))
	require.Equal(t, domain.CategoryTeams, s.Category())
}

func TestSearchBarEditAndClear(t *testing.T) {
	s := NewSearchBar(domain.CategoryAll)

	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ars")})
	require.Equal(t, SearchBarEdited, action)
	require.Equal(t, "ars", s.Value())

	s.SetSuggestions([]string{"arsenal", "arsenal tula", "arsenal sarandi", "arsenal kyiv"})
	require.Len(t, s.Suggestions(), maxSuggestions)

	s, _, action = s.Update(press(tea.KeyCtrlX))
	require.Equal(t, SearchBarCleared, action)
	require.Empty(t, s.Value())
	require.Empty(t, s.Suggestions())
}

func TestResultsListNavigation(t *testing.T) {
	l := NewResultsList()
	l.SetSize(60, 10)
	l.SetResults([]domain.SearchResult{
		{ID: "1", Name: "Arsenal"},
		{ID: "2", Name: "Aston Villa"},
		{ID: "3", Name: "Chelsea"},
	})
	require.Equal(t, 3, l.VisibleCount())

	l, _, _ = l.Update(press(tea.KeyDown))
	l, _, _ = l.Update(press(tea.KeyDown))
	l, _, _ = l.Update(press(tea.KeyDown)) // clamps at the end
	sel, ok := l.Selected()
	require.True(t, ok)
	require.Equal(t, "Chelsea", sel.Name)

	_, _, action := l.Update(press(tea.KeyEnter))
	require.Equal(t, ResultsListOpen, action)

	_, _, action = l.Update(press(tea.KeyEsc))
	require.Equal(t, ResultsListBack, action)
}

func TestResultsListEmpty(t *testing.T) {
	l := NewResultsList()
	_, ok := l.Selected()
	require.False(t, ok)

	_, _, action := l.Update(press(tea.KeyEnter))
	require.Equal(t, ResultsListNone, action)
}
