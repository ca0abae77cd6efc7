package tui

import (
	"github.com/mmcdole/kickoff/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StateChangedMsg carries a search state published by the client
type StateChangedMsg struct {
	State domain.SearchState
}

// SearchDoneMsg signals that a search (or retry) call returned
type SearchDoneMsg struct {
	State domain.SearchState
	Err   error // Validation error, ErrSuperseded or ErrNothingToRetry
}

// HistoryLoadedMsg carries recent queries for suggestions
type HistoryLoadedMsg struct {
	Entries []domain.HistoryEntry
}

// StatesClosedMsg signals that the state channel was closed
type StatesClosedMsg struct{}
