package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/search"
)

// historyLimit is how many recent queries feed the suggestions
const historyLimit = 20

// Command factories for async operations

// SearchCmd validates text and runs the search
func SearchCmd(ctx context.Context, client *search.Client, text string, category domain.Category) tea.Cmd {
	return func() tea.Msg {
		state, err := client.SearchText(ctx, text, category)
		return SearchDoneMsg{State: state, Err: err}
	}
}

// RetryCmd re-runs the most recent query
func RetryCmd(ctx context.Context, client *search.Client) tea.Cmd {
	return func() tea.Msg {
		state, err := client.Retry(ctx)
		return SearchDoneMsg{State: state, Err: err}
	}
}

// WaitForStateCmd reads the next state from the observer channel.
// Update re-issues it after every StateChangedMsg.
func WaitForStateCmd(states <-chan domain.SearchState) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return StatesClosedMsg{}
		}
		return StateChangedMsg{State: state}
	}
}

// LoadHistoryCmd loads recent queries from the history store
func LoadHistoryCmd(store domain.HistoryStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.Recent(historyLimit)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading history"}
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}
