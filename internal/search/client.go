package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/kickoff/internal/domain"
)

// Client owns the single outstanding search and its state.
//
// Every call to Search gets a sequence number. Only the most recently
// issued search may transition state; completions of older searches are
// dropped and their callers get domain.ErrSuperseded. Starting a search
// also cancels the previous in-flight request.
type Client struct {
	repo   domain.SearchRepository
	logger *slog.Logger

	mu        sync.Mutex
	state     domain.SearchState
	seq       uint64
	cancel    context.CancelFunc // cancels the in-flight search, nil when none
	lastQuery domain.Query
	hasQuery  bool

	observers      map[int]domain.StateObserver
	nextObserverID int

	// notifyMu keeps observer delivery in transition order
	notifyMu sync.Mutex
}

// NewClient creates a new search client in the Idle state
func NewClient(repo domain.SearchRepository, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		repo:      repo,
		logger:    logger,
		state:     domain.IdleState(),
		observers: make(map[int]domain.StateObserver),
	}
}

// State returns the current state. The results slice is a copy.
func (c *Client) State() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// Subscribe registers an observer for every subsequent transition.
// Observers run synchronously on the searching goroutine and must not
// call back into the Client.
func (c *Client) Subscribe(obs domain.StateObserver) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = obs
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// SearchText validates text and runs the search. Validation failures are
// returned directly; no request is made and state is left untouched.
func (c *Client) SearchText(ctx context.Context, text string, category domain.Category) (domain.SearchState, error) {
	q, err := Build(text, category)
	if err != nil {
		c.logger.Debug("search rejected", "error", err, "category", category.String())
		return c.State(), err
	}
	return c.Search(ctx, q)
}

// Search moves to Loading, runs the query and moves to Loaded or Failed.
// It blocks until the request completes. The returned state is the one
// this call produced; a superseded call returns domain.ErrSuperseded.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.SearchState, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	c.cancel = cancel
	c.lastQuery = q
	c.hasQuery = true
	c.transitionLocked(domain.LoadingState(q, seq))

	c.logger.Debug("search started", "seq", seq, "text", q.Text, "type_ids", q.TypeIDsCSV())

	results, err := c.repo.Search(ctx, q)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale search completion", "seq", seq, "error", err)
		return domain.SearchState{}, domain.ErrSuperseded
	}
	c.cancel = nil

	var next domain.SearchState
	if err != nil {
		se := domain.AsSearchError(err)
		next = domain.FailedState(q, seq, se)
		c.logger.Warn("search failed", "seq", seq, "kind", se.Kind.String(), "error", se)
	} else {
		next = domain.LoadedState(q, seq, cloneResults(results))
		c.logger.Info("search loaded", "seq", seq, "text", q.Text, "results", len(next.Results))
	}
	c.transitionLocked(next)

	return cloneState(next), nil
}

// Retry re-runs the most recent query
func (c *Client) Retry(ctx context.Context) (domain.SearchState, error) {
	c.mu.Lock()
	q, ok := c.lastQuery, c.hasQuery
	c.mu.Unlock()

	if !ok {
		return c.State(), domain.ErrNothingToRetry
	}
	return c.Search(ctx, q)
}

// Reset returns to Idle, cancelling and discarding any in-flight search.
// The Idle state carries the new sequence number so observers can order it
// against the states of earlier searches.
func (c *Client) Reset() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	if c.state.IsIdle() {
		c.mu.Unlock()
		return
	}
	idle := domain.IdleState()
	idle.Seq = c.seq
	c.transitionLocked(idle)
}

// transitionLocked replaces the state and notifies observers.
// Must be called with c.mu held; it releases c.mu.
func (c *Client) transitionLocked(next domain.SearchState) {
	c.state = next

	observers := make([]domain.StateObserver, 0, len(c.observers))
	for _, obs := range c.observers {
		observers = append(observers, obs)
	}

	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	for _, obs := range observers {
		obs.OnStateChange(cloneState(next))
	}
}

func cloneState(s domain.SearchState) domain.SearchState {
	s.Results = cloneResults(s.Results)
	s.Query.TypeIDs = append([]int(nil), s.Query.TypeIDs...)
	return s
}

func cloneResults(results []domain.SearchResult) []domain.SearchResult {
	if results == nil {
		return nil
	}
	out := make([]domain.SearchResult, len(results))
	for i, r := range results {
		out[i] = r.Clone()
	}
	return out
}
