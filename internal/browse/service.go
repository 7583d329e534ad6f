package browse

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shopgrid/catalog-browser/internal/model"
)

// Defaults
const (
	DefaultFetchTimeout = 30 * time.Second

	// DefaultFailureMessage is the stable text carried by the Error state.
	// Raw fetch errors are logged, never surfaced to the UI.
	DefaultFailureMessage = "Unable to load products. Please try again."
)

// Service owns the catalog view-state: the fetch lifecycle, the
// loading/error/empty/loaded phases, and the local search filter applied to
// the last successfully fetched set. All transitions are serialized under a
// single mutex; the UI receives read-only snapshots through the update
// callback.
type Service struct {
	fetcher Fetcher

	mu             sync.Mutex
	state          model.ViewState
	generation     uint64 // bumped on every Refresh; stale resolutions are discarded
	fetchTimeout   time.Duration
	failureMessage string
	onUpdate       func(model.ViewState) // callback for UI updates
}

// NewService creates a new browse service backed by the given fetcher.
// The state starts in Loading; call Refresh to issue the first fetch.
func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher:        fetcher,
		state:          model.ViewState{Phase: model.PhaseLoading},
		fetchTimeout:   DefaultFetchTimeout,
		failureMessage: DefaultFailureMessage,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.ViewState)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetFetchTimeout sets the per-fetch deadline
func (s *Service) SetFetchTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	s.mu.Lock()
	s.fetchTimeout = timeout
	s.mu.Unlock()
}

// SetFailureMessage sets the stable user-presentable text carried by the
// Error state
func (s *Service) SetFailureMessage(message string) {
	if message == "" {
		message = DefaultFailureMessage
	}
	s.mu.Lock()
	s.failureMessage = message
	s.mu.Unlock()
}

// Refresh transitions to Loading, clearing any prior error, and issues
// exactly one fetch. It serves both the initial load and user-initiated
// retry. A fetch still in flight from an earlier Refresh is not aborted,
// but its resolution is discarded: only the latest generation may settle
// the state.
func (s *Service) Refresh() {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	timeout := s.fetchTimeout
	s.state = model.ViewState{Phase: model.PhaseLoading, Query: s.state.Query}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)

	go s.fetch(generation, timeout)
}

// fetch runs one catalog fetch and applies its result unless a newer
// Refresh superseded it in the meantime.
func (s *Service) fetch(generation uint64, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	products, err := s.fetcher.FetchAll(ctx)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		log.Printf("Discarding stale catalog fetch: generation %d, latest %d", generation, s.generation)
		return
	}

	query := s.state.Query
	switch {
	case err != nil:
		log.Printf("Catalog fetch failed: %v", err)
		s.state = model.ViewState{Phase: model.PhaseError, Message: s.failureMessage, Query: query}
	case len(products) == 0:
		s.state = model.ViewState{Phase: model.PhaseEmpty, Query: query}
	default:
		s.state = model.ViewState{
			Phase:   model.PhaseLoaded,
			Query:   query,
			All:     products,
			Visible: filterProducts(products, query),
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

// Search recomputes the visible set from the authoritative set for the
// given query. Pure and synchronous: no I/O, no fetch. Outside the Loaded
// phase only the query text is remembered (so a fetch resolving later picks
// it up); the phase itself is untouched.
func (s *Service) Search(query string) {
	s.mu.Lock()
	s.state.Query = query
	if s.state.Phase == model.PhaseLoaded {
		s.state.Visible = filterProducts(s.state.All, query)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

// State returns a read-only snapshot of the current view-state
func (s *Service) State() model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the state with fresh slice headers so callers can
// never reach back into the service's own data. Callers must hold s.mu.
func (s *Service) snapshotLocked() model.ViewState {
	snapshot := s.state
	if s.state.All != nil {
		snapshot.All = make([]model.Product, len(s.state.All))
		copy(snapshot.All, s.state.All)
	}
	if s.state.Visible != nil {
		snapshot.Visible = make([]model.Product, len(s.state.Visible))
		copy(snapshot.Visible, s.state.Visible)
	}
	return snapshot
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(state model.ViewState) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}

// filterProducts derives the visible subset of products matching the query.
// The input slice is never modified; an empty query keeps every product.
func filterProducts(products []model.Product, query string) []model.Product {
	visible := make([]model.Product, 0, len(products))
	for _, product := range products {
		if product.MatchesQuery(query) {
			visible = append(visible, product)
		}
	}
	return visible
}
