package domain

// Phase is the lifecycle phase of a search operation
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// SearchState describes the most recent search operation.
// Results is only meaningful in PhaseLoaded, Err only in PhaseFailed.
type SearchState struct {
	Phase   Phase
	Query   Query          // Query that produced this state (zero when idle)
	Results []SearchResult // Ordered as returned by the server
	Err     *SearchError   // Failure reason
	Seq     uint64         // Sequence number of the search that produced this state
}

// IdleState returns the initial state
func IdleState() SearchState {
	return SearchState{Phase: PhaseIdle}
}

// LoadingState returns the in-flight state for a query
func LoadingState(q Query, seq uint64) SearchState {
	return SearchState{Phase: PhaseLoading, Query: q, Seq: seq}
}

// LoadedState returns a successful state. A nil results slice is normalized
// to an empty one so "no results" is distinguishable from "not loaded".
func LoadedState(q Query, seq uint64, results []SearchResult) SearchState {
	if results == nil {
		results = []SearchResult{}
	}
	return SearchState{Phase: PhaseLoaded, Query: q, Results: results, Seq: seq}
}

// FailedState returns a failed state
func FailedState(q Query, seq uint64, err *SearchError) SearchState {
	return SearchState{Phase: PhaseFailed, Query: q, Err: err, Seq: seq}
}

// IsIdle reports whether no search has run (or the client was reset)
func (s SearchState) IsIdle() bool { return s.Phase == PhaseIdle }

// IsLoading reports whether a search is in flight
func (s SearchState) IsLoading() bool { return s.Phase == PhaseLoading }

// IsLoaded reports whether the last search succeeded
func (s SearchState) IsLoaded() bool { return s.Phase == PhaseLoaded }

// IsFailed reports whether the last search failed
func (s SearchState) IsFailed() bool { return s.Phase == PhaseFailed }

// StateObserver receives every state transition of a search client.
type StateObserver interface {
	OnStateChange(state SearchState)
}

// StateObserverFunc adapts a function to StateObserver
type StateObserverFunc func(state SearchState)

// OnStateChange calls f(state)
func (f StateObserverFunc) OnStateChange(state SearchState) { f(state) }
