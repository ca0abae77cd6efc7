package tui

import "github.com/mmcdole/kickoff/internal/domain"

// ChannelObserver adapts domain.StateObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- domain.SearchState
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- domain.SearchState) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnStateChange sends the state to the channel (non-blocking if full).
// The final state of a search also arrives as SearchDoneMsg, so a dropped
// intermediate state is harmless.
func (o *ChannelObserver) OnStateChange(state domain.SearchState) {
	select {
	case o.ch <- state:
	default: // Non-blocking if channel full
	}
}
